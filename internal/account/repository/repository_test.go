package repository_test

import (
	"context"
	"testing"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *repository.AccountRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Account{}))
	return repository.New(db)
}

func seedAccount(t *testing.T, repo *repository.AccountRepository, balance string) *models.Account {
	t.Helper()
	account := &models.Account{
		Status:  models.StatusActive,
		Balance: decimal.RequireFromString(balance),
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestDebitBalance_SufficientFunds(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	account := seedAccount(t, repo, "500.00")

	rows, err := repo.DebitBalance(ctx, account.ID, decimal.RequireFromString("100.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	reloaded, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(decimal.RequireFromString("400.00")),
		"balance was %s", reloaded.Balance)
}

func TestDebitBalance_ExactBalanceDrainsToZero(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	account := seedAccount(t, repo, "100.00")

	rows, err := repo.DebitBalance(ctx, account.ID, decimal.RequireFromString("100.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	reloaded, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.IsZero(), "balance was %s", reloaded.Balance)
}

func TestDebitBalance_InsufficientFundsLeavesBalanceUntouched(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	account := seedAccount(t, repo, "50.00")

	rows, err := repo.DebitBalance(ctx, account.ID, decimal.RequireFromString("100.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	reloaded, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(decimal.RequireFromString("50.00")),
		"balance was %s", reloaded.Balance)
}

func TestDebitBalance_MissingAccount(t *testing.T) {
	repo := newTestRepo(t)

	rows, err := repo.DebitBalance(context.Background(), "no-such-id", decimal.RequireFromString("10.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestCreditBalance(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	account := seedAccount(t, repo, "50.00")

	rows, err := repo.CreditBalance(ctx, account.ID, decimal.RequireFromString("25.50"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	reloaded, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Balance.Equal(decimal.RequireFromString("75.50")),
		"balance was %s", reloaded.Balance)
}

func TestCreditBalance_MissingAccount(t *testing.T) {
	repo := newTestRepo(t)

	rows, err := repo.CreditBalance(context.Background(), "no-such-id", decimal.RequireFromString("10.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestCreate_AssignsID(t *testing.T) {
	repo := newTestRepo(t)
	account := seedAccount(t, repo, "0.00")

	assert.NotEmpty(t, account.ID)
}
