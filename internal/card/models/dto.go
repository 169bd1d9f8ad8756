package models

import (
	"strings"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/pkg/types"
)

// CardRequest is the payload for card creation. The card number arrives in
// plain text and never leaves the service that way.
type CardRequest struct {
	CardNumber string     `json:"cardNumber" binding:"required,len=16,numeric"`
	Status     string     `json:"status" binding:"required"`
	Expiry     types.Date `json:"expiry" binding:"required"`
	AccountID  string     `json:"accountId" binding:"required,uuid"`
}

func (r *CardRequest) Sanitize() {
	r.CardNumber = strings.TrimSpace(r.CardNumber)
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	r.AccountID = strings.TrimSpace(r.AccountID)
}

// CardResponse is the outbound card payload. The number is decrypted for the
// response only; at rest it stays ciphertext.
type CardResponse struct {
	ID         string     `json:"id"`
	CardNumber string     `json:"cardNumber"`
	Status     CardStatus `json:"status"`
	Expiry     types.Date `json:"expiry"`
	AccountID  string     `json:"accountId"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
