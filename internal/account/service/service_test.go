package service_test

import (
	"context"
	"testing"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/repository"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/service"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *service.AccountService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Account{}))
	return service.NewAccountService(repository.New(db))
}

func createAccount(t *testing.T, svc *service.AccountService, balance string) *models.Account {
	t.Helper()
	account, err := svc.CreateAccount(context.Background(), &models.AccountRequest{
		Status:  "active",
		Balance: decimal.RequireFromString(balance),
	})
	require.NoError(t, err)
	return account
}

func TestCreateAccount_NormalizesStatus(t *testing.T) {
	svc := newTestService(t)

	account := createAccount(t, svc, "100.00")

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, models.StatusActive, account.Status)
}

func TestCreateAccount_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateAccount(context.Background(), &models.AccountRequest{Status: "FROZEN"})

	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestGetAccountByID_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetAccountByID(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Equal(t, "Account not found with id: missing", err.Error())
}

func TestUpdateAccount_ChangesStatusAndBalance(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	account := createAccount(t, svc, "100.00")

	updated, err := svc.UpdateAccount(ctx, account.ID, &models.AccountRequest{
		Status:  "inactive",
		Balance: decimal.RequireFromString("250.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, updated.Status)
	assert.True(t, updated.Balance.Equal(decimal.RequireFromString("250.00")))
}

func TestAdjustBalance_Debit(t *testing.T) {
	svc := newTestService(t)
	account := createAccount(t, svc, "500.00")

	snapshot, err := svc.AdjustBalance(context.Background(), account.ID, decimal.RequireFromString("100.00"), "D")

	require.NoError(t, err)
	assert.True(t, snapshot.Balance.Equal(decimal.RequireFromString("400.00")),
		"balance was %s", snapshot.Balance)
}

func TestAdjustBalance_Credit(t *testing.T) {
	svc := newTestService(t)
	account := createAccount(t, svc, "500.00")

	snapshot, err := svc.AdjustBalance(context.Background(), account.ID, decimal.RequireFromString("100.00"), "C")

	require.NoError(t, err)
	assert.True(t, snapshot.Balance.Equal(decimal.RequireFromString("600.00")),
		"balance was %s", snapshot.Balance)
}

func TestAdjustBalance_InsufficientFundsIsBusinessError(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	account := createAccount(t, svc, "50.00")

	_, err := svc.AdjustBalance(ctx, account.ID, decimal.RequireFromString("100.00"), "D")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBusiness))
	assert.Equal(t, "Insufficient funds or account not found", err.Error())

	untouched, err := svc.GetAccountByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, untouched.Balance.Equal(decimal.RequireFromString("50.00")))
}

func TestAdjustBalance_DebitMissingAccount(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AdjustBalance(context.Background(), "missing", decimal.RequireFromString("10.00"), "D")

	assert.True(t, apperrors.IsKind(err, apperrors.KindBusiness))
}

func TestAdjustBalance_CreditMissingAccount(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AdjustBalance(context.Background(), "missing", decimal.RequireFromString("10.00"), "C")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBusiness))
	assert.Equal(t, "account not found", err.Error())
}

func TestAdjustBalance_InvalidInput(t *testing.T) {
	svc := newTestService(t)
	account := createAccount(t, svc, "100.00")

	_, err := svc.AdjustBalance(context.Background(), account.ID, decimal.Zero, "D")
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	_, err = svc.AdjustBalance(context.Background(), account.ID, decimal.RequireFromString("10.00"), "X")
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestDeleteAccount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	account := createAccount(t, svc, "0.00")

	require.NoError(t, svc.DeleteAccount(ctx, account.ID))

	_, err := svc.GetAccountByID(ctx, account.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestDeleteAccount_NotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.DeleteAccount(context.Background(), "missing")

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
