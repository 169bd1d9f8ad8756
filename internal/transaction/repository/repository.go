package repository

import (
	"context"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/models"
	"gorm.io/gorm"
)

// TransactionRepository persists finalized attempts. An attempt and its
// rejection are written in one database transaction so no reader ever sees a
// half-finalized state.
type TransactionRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Rejection").Create(transaction).Error; err != nil {
			return err
		}
		if transaction.Rejection != nil {
			transaction.Rejection.TransactionID = transaction.ID
			if err := tx.Create(transaction.Rejection).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Rejection").
		Where("id = ?", id).
		First(&transaction).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}
