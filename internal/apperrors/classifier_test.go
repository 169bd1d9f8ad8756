package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func errorBody(message string) []byte {
	return []byte(fmt.Sprintf(`{"apiPath":"/api/card","errorCode":404,"errorMessage":%q,"errorTime":"2026-01-15T10:00:00Z"}`, message))
}

func TestClassify_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantKind   apperrors.Kind
	}{
		{name: "not found", statusCode: 404, wantKind: apperrors.KindNotFound},
		{name: "business rule", statusCode: 422, wantKind: apperrors.KindBusiness},
		{name: "bad request", statusCode: 400, wantKind: apperrors.KindBadRequest},
		{name: "no response", statusCode: 0, wantKind: apperrors.KindServiceUnavailable},
		{name: "internal error", statusCode: 500, wantKind: apperrors.KindServiceUnavailable},
		{name: "bad gateway", statusCode: 502, wantKind: apperrors.KindServiceUnavailable},
		{name: "unavailable", statusCode: 503, wantKind: apperrors.KindServiceUnavailable},
		{name: "gateway timeout", statusCode: 504, wantKind: apperrors.KindServiceUnavailable},
		{name: "unexpected status", statusCode: 418, wantKind: apperrors.KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperrors.Classify(apperrors.OriginCard, tt.statusCode, errorBody("boom"))
			assert.Equal(t, tt.wantKind, err.Kind)
			assert.Equal(t, apperrors.OriginCard, err.Origin)
		})
	}
}

func TestClassify_UsesUpstreamMessage(t *testing.T) {
	err := apperrors.Classify(apperrors.OriginCard, 404, errorBody("Card not found with cardNumber: 1234123412341234"))

	assert.Equal(t, apperrors.KindNotFound, err.Kind)
	assert.Equal(t, "Card not found with cardNumber: 1234123412341234", err.Message)
}

func TestClassify_ServiceUnavailablePrefixesServiceName(t *testing.T) {
	err := apperrors.Classify(apperrors.OriginFraud, 503, errorBody("connection pool exhausted"))

	assert.Equal(t, "Service Fraud. connection pool exhausted", err.Message)
}

func TestClassify_GenericStatusPrefixesMessage(t *testing.T) {
	err := apperrors.Classify(apperrors.OriginAccount, 418, errorBody("odd response"))

	assert.Equal(t, "Generic Error: odd response", err.Message)
}

func TestClassify_MalformedBodyFallsBack(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "empty body", body: nil},
		{name: "not json", body: []byte("<html>502 Bad Gateway</html>")},
		{name: "json without message", body: []byte(`{"apiPath":"/api/account"}`)},
		{name: "blank message", body: errorBody("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperrors.Classify(apperrors.OriginAccount, 404, tt.body)
			assert.Equal(t, "External service error", err.Message)
		})
	}
}

func TestClassify_PreservesOrigin(t *testing.T) {
	for _, origin := range []apperrors.Origin{apperrors.OriginCard, apperrors.OriginAccount, apperrors.OriginFraud} {
		err := apperrors.Classify(origin, 404, nil)
		assert.Equal(t, origin, err.Origin)
	}
}

func TestClassifyTransport_AlwaysServiceUnavailable(t *testing.T) {
	err := apperrors.ClassifyTransport(apperrors.OriginAccount, errors.New("dial tcp: connection refused"))

	assert.Equal(t, apperrors.KindServiceUnavailable, err.Kind)
	assert.Equal(t, "Service Account. dial tcp: connection refused", err.Message)
}

func TestResourceNotFound_MessageFormat(t *testing.T) {
	err := apperrors.ResourceNotFound(apperrors.OriginTransaction, "Transaction", "id", "tx-404")

	assert.Equal(t, apperrors.KindNotFound, err.Kind)
	assert.Equal(t, "Transaction not found with id: tx-404", err.Message)
}

func TestIsKind(t *testing.T) {
	err := apperrors.NewBusiness(apperrors.OriginAccount, "Insufficient funds or account not found")

	assert.True(t, apperrors.IsKind(err, apperrors.KindBusiness))
	assert.False(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.False(t, apperrors.IsKind(errors.New("plain"), apperrors.KindBusiness))
}
