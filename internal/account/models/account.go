package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountStatus string

const (
	StatusActive   AccountStatus = "ACTIVE"
	StatusInactive AccountStatus = "INACTIVE"
)

func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// TransactionType is the balance adjustment direction: C credits, D debits.
type TransactionType string

const (
	TypeCredit TransactionType = "C"
	TypeDebit  TransactionType = "D"
)

type Account struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	Status    AccountStatus   `gorm:"not null;size:20" json:"status"`
	Balance   decimal.Decimal `gorm:"type:numeric(19,2);not null" json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	return
}
