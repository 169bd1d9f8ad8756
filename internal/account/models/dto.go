package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountRequest is the payload for account create/update calls.
type AccountRequest struct {
	Status  string          `json:"status" binding:"required"`
	Balance decimal.Decimal `json:"balance"`
}

func (r *AccountRequest) Sanitize() {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
}

func (r *AccountRequest) ToEntity() *Account {
	return &Account{
		Status:  AccountStatus(r.Status),
		Balance: r.Balance,
	}
}
