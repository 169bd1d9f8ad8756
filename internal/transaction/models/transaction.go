package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionStatus string

const (
	StatusApproved TransactionStatus = "APPROVED"
	StatusRejected TransactionStatus = "REJECTED"
)

// TransactionType is the money movement direction: C credits the account,
// D debits it.
type TransactionType string

const (
	TypeCredit TransactionType = "C"
	TypeDebit  TransactionType = "D"
)

// Transaction is one attempt to move money. Every attempt that reaches the
// validation stage is stored, approved or rejected, so it stays queryable by
// id. Status is terminal: a row is written once, finalized.
type Transaction struct {
	ID                string                `gorm:"primaryKey" json:"id"`
	TransactionAmount decimal.Decimal       `gorm:"type:numeric(19,2);not null" json:"transactionAmount"`
	TransactionDate   time.Time             `gorm:"not null" json:"transactionDate"`
	TransactionType   TransactionType       `gorm:"not null;size:2" json:"transactionType"`
	AccountID         string                `gorm:"not null" json:"accountId"`
	CardID            string                `gorm:"not null" json:"cardId"`
	Status            TransactionStatus     `gorm:"not null;size:20" json:"status"`
	Rejection         *TransactionRejection `gorm:"foreignKey:TransactionID" json:"rejection,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.TransactionDate.IsZero() {
		t.TransactionDate = time.Now().UTC()
	}

	return
}

// TransactionRejection exists if and only if its transaction was rejected.
type TransactionRejection struct {
	ID            string `gorm:"primaryKey" json:"-"`
	TransactionID string `gorm:"not null;uniqueIndex" json:"-"`
	Reason        string `gorm:"not null" json:"reason"`
	IsFraudulent  bool   `gorm:"not null" json:"isFraudulent"`
}

func (r *TransactionRejection) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	return
}
