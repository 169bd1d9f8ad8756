package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/encryption"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/service"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/repository/postgres"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAccountID = "550e8400-e29b-41d4-a716-446655440000"

func newTestService(t *testing.T) (*service.CardService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Card{}))

	encryptor, err := encryption.NewEncryptor("test-passphrase")
	require.NoError(t, err)

	return service.NewCardService(postgres.New[models.Card](db), encryptor, encryption.NewHasher("test-secret")), db
}

func cardRequest(cardNumber string) *models.CardRequest {
	return &models.CardRequest{
		CardNumber: cardNumber,
		Status:     "active",
		Expiry:     types.NewDate(time.Now().Year()+2, time.December, 31),
		AccountID:  testAccountID,
	}
}

func TestCreateCard_EncryptsNumberAtRest(t *testing.T) {
	svc, db := newTestService(t)

	card, err := svc.CreateCard(context.Background(), cardRequest("1234123412341234"))

	require.NoError(t, err)
	assert.NotEmpty(t, card.ID)
	assert.Equal(t, models.StatusActive, card.Status)
	assert.Equal(t, "1234123412341234", card.CardNumber)

	var stored models.Card
	require.NoError(t, db.Where("id = ?", card.ID).First(&stored).Error)
	assert.NotEqual(t, "1234123412341234", stored.CardNumber)
	assert.NotContains(t, stored.CardNumber, "1234123412341234")
	assert.Len(t, stored.CardNumberHash, 64)
}

func TestCreateCard_DuplicateNumberRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCard(ctx, cardRequest("1234123412341234"))
	require.NoError(t, err)

	_, err = svc.CreateCard(ctx, cardRequest("1234123412341234"))

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBusiness))
	assert.Equal(t, "Card already exists", err.Error())
}

func TestCreateCard_InvalidStatus(t *testing.T) {
	svc, _ := newTestService(t)
	req := cardRequest("1234123412341234")
	req.Status = "EXPIRED"

	_, err := svc.CreateCard(context.Background(), req)

	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestGetCardByCardNumber_DecryptsForResponse(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCard(ctx, cardRequest("1234123412341234"))
	require.NoError(t, err)

	found, err := svc.GetCardByCardNumber(ctx, "1234123412341234")

	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, testAccountID, found.AccountID)
	assert.Equal(t, "1234123412341234", found.CardNumber)
}

func TestGetCardByCardNumber_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetCardByCardNumber(context.Background(), "9999999999999999")

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Equal(t, "Card not found with cardNumber: 9999999999999999", err.Error())
}

func TestGetCardByID_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetCardByID(context.Background(), "missing")

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestActivateAndDeactivateCard(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCard(ctx, cardRequest("1234123412341234"))
	require.NoError(t, err)

	deactivated, err := svc.DeactivateCard(ctx, "1234123412341234")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, deactivated.Status)

	activated, err := svc.ActivateCard(ctx, "1234123412341234")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, activated.Status)

	reloaded, err := svc.GetCardByCardNumber(ctx, "1234123412341234")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, reloaded.Status)
}

func TestActivateCard_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ActivateCard(context.Background(), "9999999999999999")

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
