package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FraudAuditLog is the append-only trail of every evaluation call. Rows are
// never updated or deleted; the sliding-window count reads them by card and
// creation time.
type FraudAuditLog struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CardID    string    `gorm:"not null;index:idx_audit_card_created" json:"cardId"`
	CreatedAt time.Time `gorm:"index:idx_audit_card_created" json:"createdAt"`
}

func (f *FraudAuditLog) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}

	return
}

// FraudRequest is the check payload sent by the transaction service.
type FraudRequest struct {
	CardID string          `json:"cardId" binding:"required,uuid"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// FraudResponse reports the evaluation outcome. RejectionReason is empty when
// the transaction is not fraudulent.
type FraudResponse struct {
	IsFraudulent    bool   `json:"isFraudulent"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}
