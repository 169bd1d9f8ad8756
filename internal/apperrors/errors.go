package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// Kind identifies the class of a domain error so callers can branch on it
// without inspecting messages.
type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindBusiness           Kind = "BUSINESS"
	KindBadRequest         Kind = "BAD_REQUEST"
	KindServiceUnavailable Kind = "SERVICE_UNAVAILABLE"
	KindGeneric            Kind = "GENERIC"
)

// Origin names the service a remote error came from. A 404 from the card
// service and a 404 from the account service are different failures for the
// orchestrator, so the origin travels with the error.
type Origin string

const (
	OriginCard        Origin = "CARD"
	OriginAccount     Origin = "ACCOUNT"
	OriginFraud       Origin = "FRAUD"
	OriginTransaction Origin = "TRANSACTION"
)

// Error is the tagged domain error used across service boundaries.
type Error struct {
	Kind    Kind
	Origin  Origin
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewNotFound(origin Origin, message string) *Error {
	return &Error{Kind: KindNotFound, Origin: origin, Message: message}
}

func NewBusiness(origin Origin, message string) *Error {
	return &Error{Kind: KindBusiness, Origin: origin, Message: message}
}

func NewBadRequest(origin Origin, message string) *Error {
	return &Error{Kind: KindBadRequest, Origin: origin, Message: message}
}

func NewServiceUnavailable(origin Origin, message string) *Error {
	return &Error{Kind: KindServiceUnavailable, Origin: origin, Message: message}
}

// ResourceNotFound builds the message format the services share for missing
// entities, e.g. "Account not found with id: <uuid>".
func ResourceNotFound(origin Origin, resource, field, value string) *Error {
	return NewNotFound(origin, fmt.Sprintf("%s not found with %s: %s", resource, field, value))
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// AsError unwraps err into an *Error, or nil when err is not one.
func AsError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// ErrorResponse is the error body every service returns and every client
// decodes.
type ErrorResponse struct {
	APIPath      string    `json:"apiPath"`
	ErrorCode    int       `json:"errorCode"`
	ErrorMessage string    `json:"errorMessage"`
	ErrorTime    time.Time `json:"errorTime"`
}
