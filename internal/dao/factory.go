// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of a1s

package dao

import (
	"github.com/a1s/w1s/internal/graphql"
)

// APIFactory implements the Factory interface over a graphql connection.
type APIFactory struct {
	client graphql.Connection
}

// NewFactory creates a new APIFactory with the given client.
func NewFactory(client graphql.Connection) *APIFactory {
	return &APIFactory{client: client}
}

// Client returns the GraphQL connection.
func (f *APIFactory) Client() graphql.Connection {
	return f.client
}

// Endpoint returns the endpoint the connection talks to.
func (f *APIFactory) Endpoint() string {
	if f.client == nil {
		return ""
	}
	return f.client.Endpoint()
}
