package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *repository.TransactionRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Transaction{}, &models.TransactionRejection{}))
	return repository.New(db)
}

func newTransaction(status models.TransactionStatus) *models.Transaction {
	return &models.Transaction{
		TransactionAmount: decimal.RequireFromString("100.00"),
		TransactionDate:   time.Now().UTC(),
		TransactionType:   models.TypeDebit,
		AccountID:         "550e8400-e29b-41d4-a716-446655440000",
		CardID:            "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Status:            status,
	}
}

func TestCreate_ApprovedWithoutRejection(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	transaction := newTransaction(models.StatusApproved)
	require.NoError(t, repo.Create(ctx, transaction))
	assert.NotEmpty(t, transaction.ID)

	reloaded, err := repo.GetByID(ctx, transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, reloaded.Status)
	assert.Nil(t, reloaded.Rejection)
}

func TestCreate_RejectedPersistsRejectionRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	transaction := newTransaction(models.StatusRejected)
	transaction.Rejection = &models.TransactionRejection{
		Reason:       "Transaction failed. Card is INACTIVE",
		IsFraudulent: false,
	}
	require.NoError(t, repo.Create(ctx, transaction))

	reloaded, err := repo.GetByID(ctx, transaction.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Rejection)
	assert.Equal(t, transaction.ID, reloaded.Rejection.TransactionID)
	assert.Equal(t, "Transaction failed. Card is INACTIVE", reloaded.Rejection.Reason)
	assert.False(t, reloaded.Rejection.IsFraudulent)
}

func TestCreate_FraudulentRejectionFlagSurvives(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	transaction := newTransaction(models.StatusRejected)
	transaction.Rejection = &models.TransactionRejection{
		Reason:       "Transaction amount exceeds $10000.00",
		IsFraudulent: true,
	}
	require.NoError(t, repo.Create(ctx, transaction))

	reloaded, err := repo.GetByID(ctx, transaction.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Rejection.IsFraudulent)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
