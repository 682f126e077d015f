package models

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/Belphemur/popcorn/internal/apperrors"
)

// APIResult holds either a success payload or the API's failure payload.
// Exactly one of the two is set.
type APIResult[T any] struct {
	value   *T
	failure *FailureResponse
}

// Success wraps a success payload
func Success[T any](value T) APIResult[T] {
	return APIResult[T]{value: &value}
}

// Failure wraps a failure payload
func Failure[T any](failure FailureResponse) APIResult[T] {
	return APIResult[T]{failure: &failure}
}

// IsSuccess reports whether the result holds a success payload
func (r APIResult[T]) IsSuccess() bool {
	return r.value != nil
}

// Value returns the success payload, if any
func (r APIResult[T]) Value() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

// Failure returns the failure payload, if any
func (r APIResult[T]) Failure() (FailureResponse, bool) {
	if r.failure == nil {
		return FailureResponse{}, false
	}
	return *r.failure, true
}

// Unwrap returns the success payload or an *apperrors.ErrNotFound carrying
// the failure code.
func (r APIResult[T]) Unwrap(resource string, id interface{}) (T, error) {
	if value, ok := r.Value(); ok {
		return value, nil
	}

	notFound := apperrors.NewNotFoundError(resource, id)
	if failure, ok := r.Failure(); ok {
		notFound.Code = failure.Code
	}
	var zero T
	return zero, notFound
}

// DecodeAPIResult decodes a response body by shape: strictly as T first,
// then as a FailureResponse. When neither fits the returned
// *apperrors.DecodeError joins both causes.
func DecodeAPIResult[T any](resource string, data []byte) (APIResult[T], error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return APIResult[T]{}, &apperrors.DecodeError{Resource: resource, Err: errors.New("empty response body")}
	}

	var value T
	successErr := json.Unmarshal(data, &value)
	if successErr == nil {
		return Success(value), nil
	}

	var failure FailureResponse
	failureErr := json.Unmarshal(data, &failure)
	if failureErr == nil {
		return Failure[T](failure), nil
	}

	return APIResult[T]{}, &apperrors.DecodeError{
		Resource: resource,
		Err:      errors.Join(successErr, failureErr),
	}
}
