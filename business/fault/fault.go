// Package fault defines the expected, user-facing error conditions of the business layer.
// The web layer maps them to status codes; anything else is an unclassified failure.
package fault

import "fmt"

// NotFound indicates the requested resource does not exist.
type NotFound struct {
	Resource string
	Id       uint64
}

func (e NotFound) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.Id)
}

// Validation indicates the request carries data the business rules reject.
type Validation struct {
	Reason string
}

func (e Validation) Error() string {
	return e.Reason
}

// Duplicate indicates a write collides with an existing resource on a unique field.
type Duplicate struct {
	Resource string
	Field    string
	Value    string
}

func (e Duplicate) Error() string {
	return fmt.Sprintf("%s with %s '%s' already exists", e.Resource, e.Field, e.Value)
}
