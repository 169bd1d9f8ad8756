package repository

import (
	"context"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/repository/postgres"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountRepository adds the conditional balance primitives on top of the
// generic store. Both updates are single statements so concurrent
// transactions cannot interleave between check and mutation.
type AccountRepository struct {
	*postgres.Repository[models.Account]
	db *gorm.DB
}

func New(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		Repository: postgres.New[models.Account](db),
		db:         db,
	}
}

// DebitBalance subtracts amount only while the balance covers it. Zero rows
// affected means the account does not exist or the funds were insufficient at
// the instant of the update.
func (r *AccountRepository) DebitBalance(ctx context.Context, id string, amount decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ? AND balance >= ?", id, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	return res.RowsAffected, res.Error
}

// CreditBalance adds amount unconditionally. Zero rows affected means the
// account does not exist.
func (r *AccountRepository) CreditBalance(ctx context.Context, id string, amount decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", amount))
	return res.RowsAffected, res.Error
}
