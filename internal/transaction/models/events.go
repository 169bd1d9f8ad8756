package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const TransactionCompletedTopic = "transactions.completed"

// TransactionCompletedEvent announces a finalized attempt, approved or
// rejected. Published best-effort after the attempt is persisted.
type TransactionCompletedEvent struct {
	TransactionID string            `json:"transaction_id"`
	Status        TransactionStatus `json:"status"`
	IsFraudulent  bool              `json:"is_fraudulent"`
	Reason        string            `json:"reason,omitempty"`
	Amount        decimal.Decimal   `json:"amount"`
	Type          TransactionType   `json:"type"`
	CardID        string            `json:"card_id"`
	AccountID     string            `json:"account_id"`
	CompletedAt   time.Time         `json:"completed_at"`
}
