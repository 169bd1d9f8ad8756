package apperrors

import (
	"encoding/json"
	"net/http"
	"strings"
)

const fallbackMessage = "External service error"

// Classify turns a non-2xx collaborator response into a domain error.
// The upstream's own errorMessage is used when the body parses as an
// ErrorResponse; anything malformed degrades to a generic message, never an
// error. statusCode 0 means the call produced no response at all.
func Classify(origin Origin, statusCode int, body []byte) *Error {
	message := extractMessage(body)

	switch statusCode {
	case http.StatusNotFound:
		return NewNotFound(origin, message)
	case http.StatusUnprocessableEntity:
		return NewBusiness(origin, message)
	case http.StatusBadRequest:
		return NewBadRequest(origin, message)
	case 0,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return NewServiceUnavailable(origin, "Service "+serviceName(origin)+". "+message)
	default:
		return &Error{Kind: KindGeneric, Origin: origin, Message: "Generic Error: " + message}
	}
}

// ClassifyTransport covers calls that never produced a response: connection
// refused, timeout, DNS failure. Always ServiceUnavailable.
func ClassifyTransport(origin Origin, err error) *Error {
	return NewServiceUnavailable(origin, "Service "+serviceName(origin)+". "+err.Error())
}

func extractMessage(body []byte) string {
	if len(body) == 0 {
		return fallbackMessage
	}
	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fallbackMessage
	}
	if strings.TrimSpace(resp.ErrorMessage) == "" {
		return fallbackMessage
	}
	return resp.ErrorMessage
}

func serviceName(origin Origin) string {
	switch origin {
	case OriginCard:
		return "Card"
	case OriginAccount:
		return "Account"
	case OriginFraud:
		return "Fraud"
	default:
		return "EXTERNAL-SERVICE"
	}
}
