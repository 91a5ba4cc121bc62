package dao

import (
	"context"
	"fmt"
	"strings"

	"github.com/a1s/w1s/internal/graphql"
)

// ResourceID identifies a resource type served by the GraphQL endpoint.
type ResourceID struct {
	Service  string // e.g., "countries"
	Resource string // e.g., "country", "continent"
}

// String returns a string representation in the form "service/resource".
func (r ResourceID) String() string {
	return fmt.Sprintf("%s/%s", r.Service, r.Resource)
}

// Parse parses a string in the form "service/resource" into a ResourceID.
func (r *ResourceID) Parse(s string) error {
	service, resource, ok := strings.Cut(s, "/")
	if !ok || service == "" || resource == "" {
		return fmt.Errorf("invalid resource ID format: %s (expected service/resource)", s)
	}
	r.Service = service
	r.Resource = resource
	return nil
}

// Predefined resource ids.
var (
	CountryRID   = ResourceID{Service: "countries", Resource: "country"}
	ContinentRID = ResourceID{Service: "countries", Resource: "continent"}
)

// Object represents a single fetched record.
type Object interface {
	ID() string
}

// Factory provides access to the GraphQL connection.
type Factory interface {
	Client() graphql.Connection
	Endpoint() string
}

// Lister retrieves all records of a resource.
type Lister interface {
	List(ctx context.Context) ([]Object, error)
}

// Accessor combines listing with initialization.
type Accessor interface {
	Lister
	Init(Factory, *ResourceID)
	ResourceID() *ResourceID
}
