package models

import (
	"strings"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/pkg/types"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the inbound payload. Card and account references are
// resolved from the card number, never supplied by the caller.
type TransactionRequest struct {
	TransactionAmount decimal.Decimal `json:"transactionAmount" binding:"required"`
	TransactionType   string          `json:"transactionType" binding:"required,oneof=C D"`
	CardNumber        string          `json:"cardNumber" binding:"required,len=16,numeric"`
}

func (r *TransactionRequest) Sanitize() {
	r.TransactionType = strings.ToUpper(strings.TrimSpace(r.TransactionType))
	r.CardNumber = strings.TrimSpace(r.CardNumber)
}

// TransactionResponse is what callers get back for both creates and reads.
// Details carries the rejection reason, or "Transaction Success".
type TransactionResponse struct {
	ID                string            `json:"id"`
	TransactionAmount decimal.Decimal   `json:"transactionAmount"`
	TransactionDate   time.Time         `json:"transactionDate"`
	TransactionType   TransactionType   `json:"transactionType"`
	AccountID         string            `json:"accountId"`
	CardID            string            `json:"cardId"`
	Status            TransactionStatus `json:"status"`
	IsFraudulent      bool              `json:"isFraudulent"`
	Details           string            `json:"details"`
}

func ToResponse(t *Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}

	resp := &TransactionResponse{
		ID:                t.ID,
		TransactionAmount: t.TransactionAmount,
		TransactionDate:   t.TransactionDate,
		TransactionType:   t.TransactionType,
		AccountID:         t.AccountID,
		CardID:            t.CardID,
		Status:            t.Status,
		Details:           "Transaction Success",
	}
	if t.Rejection != nil {
		resp.IsFraudulent = t.Rejection.IsFraudulent
		resp.Details = t.Rejection.Reason
	}
	return resp
}

// CardResponse is the card collaborator's lookup payload.
type CardResponse struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	Expiry    types.Date `json:"expiry"`
	AccountID string     `json:"accountId"`
}

// AccountResponse is the account collaborator's snapshot payload.
type AccountResponse struct {
	ID      string          `json:"id"`
	Status  string          `json:"status"`
	Balance decimal.Decimal `json:"balance"`
}

// FraudCheckRequest is sent to the fraud collaborator for every attempt that
// passed card and account validation.
type FraudCheckRequest struct {
	CardID string          `json:"cardId"`
	Amount decimal.Decimal `json:"amount"`
}

// FraudCheckResponse is the fraud collaborator's verdict.
type FraudCheckResponse struct {
	IsFraudulent    bool   `json:"isFraudulent"`
	RejectionReason string `json:"rejectionReason"`
}
