package collibra

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by name or id yields no asset.
var ErrNotFound = errors.New("collibra asset not found")

// APIError is returned for any non-2xx response. Body holds the raw response text.
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("collibra %s failed with status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// GraphQLError is returned when a 2xx GraphQL response carries an errors list.
type GraphQLError struct {
	Operation string
	Messages  []string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("collibra %s returned graphql errors: %v", e.Operation, e.Messages)
}
