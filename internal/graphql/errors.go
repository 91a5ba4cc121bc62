package graphql

import (
	"errors"
	"fmt"
)

// FetchError reports a failed round trip to the GraphQL endpoint.
type FetchError struct {
	Op        string
	Status    int
	Msg       string
	Err       error
	retryable bool
}

func (e *FetchError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("graphql %s: status %d %s", e.Op, e.Status, e.Msg)
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("graphql %s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("graphql %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("graphql %s: %s", e.Op, e.Msg)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the request may succeed if sent again.
func (e *FetchError) Retryable() bool {
	return e.retryable
}

// IsRetryable checks an error chain for a retryable FetchError.
func IsRetryable(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Retryable()
	}
	return false
}
