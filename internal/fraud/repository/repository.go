package repository

import (
	"context"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/repository/postgres"
	"gorm.io/gorm"
)

// AuditRepository reads and appends the fraud audit trail.
type AuditRepository struct {
	*postgres.Repository[models.FraudAuditLog]
}

func New(db *gorm.DB) *AuditRepository {
	return &AuditRepository{
		Repository: postgres.New[models.FraudAuditLog](db),
	}
}

// CountByCardAfter counts audit rows for a card created strictly after the
// cutoff. The current attempt is appended after the count is taken, so it
// never counts against itself.
func (r *AuditRepository) CountByCardAfter(ctx context.Context, cardID string, cutoff time.Time) (int64, error) {
	return r.CountBy(ctx, "card_id = ? AND created_at > ?", cardID, cutoff)
}
