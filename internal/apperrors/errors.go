package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
// The metadata API reports it through its failure payload, so Code carries
// the upstream code when there is one.
type ErrNotFound struct {
	Resource string
	ID       interface{}
	Code     int
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// TransportError is returned when a request could not be completed:
// connection failures, timeouts, unreadable bodies or unexpected statuses.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *TransportError) Is(target error) bool {
	_, ok := target.(*TransportError)
	return ok
}

// DecodeError is returned when a response body matches none of the shapes
// the caller expects.
type DecodeError struct {
	Resource string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Resource, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}

// LaunchError is returned when the operating system refuses to open a URL
// in the default browser.
type LaunchError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to open %s in default browser: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *LaunchError) Is(target error) bool {
	_, ok := target.(*LaunchError)
	return ok
}

// MissingFieldError is returned by strict model decoding when a required
// JSON field is absent or null.
type MissingFieldError struct {
	Type  string
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Type, e.Field)
}

// Is allows for error checking with errors.Is().
func (e *MissingFieldError) Is(target error) bool {
	_, ok := target.(*MissingFieldError)
	return ok
}
