package models

import (
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardStatus string

const (
	StatusActive   CardStatus = "ACTIVE"
	StatusInactive CardStatus = "INACTIVE"
)

// Card stores the number encrypted at rest; the deterministic hash is the
// only thing exact-match lookups touch.
type Card struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	Status         CardStatus `gorm:"not null;size:20" json:"status"`
	Expiry         types.Date `gorm:"not null" json:"expiry"`
	CardNumber     string     `gorm:"not null;size:1000" json:"-"`
	CardNumberHash string     `gorm:"not null;uniqueIndex;size:255" json:"-"`
	AccountID      string     `gorm:"not null" json:"accountId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	return
}
