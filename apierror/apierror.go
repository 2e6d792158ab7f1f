// Package apierror defines the error taxonomy shared by the Phoenix
// services. Every error carries the HTTP status it maps to, a human-readable
// message and the name of the process that failed; the status is transport
// metadata and never appears in the serialized body.
package apierror

import (
	"encoding/json"
	"errors"
)

// Kind enumerates the closed set of error families. There are no kinds
// beyond the ones below; the boundary handler can match exhaustively.
type Kind uint8

const (
	// KindBusiness is the generic business-rule violation. Status defaults
	// to 400 and may be overridden.
	KindBusiness Kind = iota
	// KindValidation is a semantic validation failure. Status defaults to
	// 422 and may be overridden.
	KindValidation
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnprocessableEntity
	KindInternal
	KindUnavailable
)

// Error is the single error type behind the whole taxonomy.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Process string
	Details []any
}

func newError(kind Kind, status int, message, process string) *Error {
	return &Error{
		Kind:    kind,
		Status:  status,
		Message: message,
		Process: process,
		Details: []any{},
	}
}

// Business creates the base business error (400). Unlike the fixed kinds it
// requires an explicit process and accepts [Error.WithStatus].
func Business(message, process string) *Error {
	return newError(KindBusiness, 400, message, process)
}

// Validation creates a validation error (422). It requires an explicit
// process and accepts [Error.WithStatus].
func Validation(message, process string) *Error {
	return newError(KindValidation, 422, message, process)
}

// BadRequest creates a 400 error for malformed or invalid client requests.
func BadRequest(message string) *Error {
	return newError(KindBadRequest, 400, message, "Processing Client Request")
}

// Unauthorized creates a 401 error for missing or invalid authentication.
func Unauthorized(message string) *Error {
	return newError(KindUnauthorized, 401, message, "Authentication")
}

// Forbidden creates a 403 error for authenticated users lacking permission.
func Forbidden(message string) *Error {
	return newError(KindForbidden, 403, message, "Authorization")
}

// NotFound creates a 404 error for missing resources.
func NotFound(message string) *Error {
	return newError(KindNotFound, 404, message, "Resource Lookup")
}

// Conflict creates a 409 error for requests conflicting with current state.
func Conflict(message string) *Error {
	return newError(KindConflict, 409, message, "Resource Conflict")
}

// UnprocessableEntity creates a 422 error for well-formed requests with
// semantic problems.
func UnprocessableEntity(message string) *Error {
	return newError(KindUnprocessableEntity, 422, message, "Data Validation")
}

// Internal creates a 500 error for unexpected server-side failures.
func Internal(message string) *Error {
	return newError(KindInternal, 500, message, "Internal Server Error")
}

// Unavailable creates a 503 error for temporary unavailability.
func Unavailable(message string) *Error {
	return newError(KindUnavailable, 503, message, "Service Availability")
}

// Error implements the error interface as "<process>: <message>".
func (e *Error) Error() string {
	return e.Process + ": " + e.Message
}

// WithProcess replaces the process label and returns the error.
func (e *Error) WithProcess(process string) *Error {
	e.Process = process
	return e
}

// WithDetails attaches structured error details and returns the error.
func (e *Error) WithDetails(details ...any) *Error {
	e.Details = append(e.Details, details...)
	return e
}

// WithStatus overrides the HTTP status. Only [KindBusiness] and
// [KindValidation] carry an adjustable status; for every other kind the
// status is fixed by construction and the call does nothing.
func (e *Error) WithStatus(status int) *Error {
	if e.Kind == KindBusiness || e.Kind == KindValidation {
		e.Status = status
	}
	return e
}

type body struct {
	Message string `json:"message"`
	Process string `json:"process"`
	Errors  []any  `json:"errors"`
}

// MarshalJSON serializes the error body as {message, process, errors}. The
// status stays out of the body and errors is [] when no details were set.
func (e *Error) MarshalJSON() ([]byte, error) {
	details := e.Details
	if details == nil {
		details = []any{}
	}
	return json.Marshal(body{
		Message: e.Message,
		Process: e.Process,
		Errors:  details,
	})
}

// As unwraps err into an *Error if one is anywhere in its chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
