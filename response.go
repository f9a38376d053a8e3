package zammad

import "fmt"

// APIError represents an error response from the Zammad API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Unwrap lets callers match the error against [ErrStatus].
func (e *APIError) Unwrap() error {
	return ErrStatus
}

// ValidationError reports invalid caller input, such as an update request
// without any fields. It carries the resource it refers to so the host can
// attribute the failure.
type ValidationError struct {
	Resource string
	Message  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// emptyUpdateError signals an update call without any fields to update.
func emptyUpdateError(resource string) error {
	return &ValidationError{
		Resource: resource,
		Message:  fmt.Sprintf("please provide at least one field to update for the %s", resource),
	}
}

// PageParams represents pagination parameters for list requests.
type PageParams struct {
	Page    int `url:"page,omitempty"`
	PerPage int `url:"per_page,omitempty"`
}
