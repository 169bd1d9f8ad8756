package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/encryption"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/models"
	"gorm.io/gorm"
)

// CardRepo defines the persistence operations the card service needs.
type CardRepo interface {
	Create(ctx context.Context, card *models.Card) error
	GetByID(ctx context.Context, id string) (*models.Card, error)
	GetFirstBy(ctx context.Context, query string, args ...interface{}) (*models.Card, error)
	ExistsBy(ctx context.Context, query string, args ...interface{}) (bool, error)
	Update(ctx context.Context, card *models.Card, id string) error
}

// CardService manages card lifecycle. Card numbers are encrypted before they
// reach the repository and resolved through their search hash on the way in.
type CardService struct {
	Repo      CardRepo
	Encryptor *encryption.Encryptor
	Hasher    *encryption.Hasher
}

func NewCardService(repo CardRepo, encryptor *encryption.Encryptor, hasher *encryption.Hasher) *CardService {
	return &CardService{
		Repo:      repo,
		Encryptor: encryptor,
		Hasher:    hasher,
	}
}

func (s *CardService) CreateCard(ctx context.Context, req *models.CardRequest) (*models.CardResponse, error) {
	req.Sanitize()

	status := models.CardStatus(req.Status)
	if status != models.StatusActive && status != models.StatusInactive {
		return nil, apperrors.NewBadRequest(apperrors.OriginCard, fmt.Sprintf("invalid card status: %s", req.Status))
	}

	hash := s.Hasher.SearchHash(req.CardNumber)
	exists, err := s.Repo.ExistsBy(ctx, "card_number_hash = ?", hash)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewBusiness(apperrors.OriginCard, "Card already exists")
	}

	encrypted, err := s.Encryptor.Encrypt(req.CardNumber)
	if err != nil {
		return nil, fmt.Errorf("encrypting card number: %w", err)
	}

	card := &models.Card{
		Status:         status,
		Expiry:         req.Expiry,
		CardNumber:     encrypted,
		CardNumberHash: hash,
		AccountID:      req.AccountID,
	}
	if err := s.Repo.Create(ctx, card); err != nil {
		return nil, err
	}
	return s.toResponse(card)
}

func (s *CardService) GetCardByID(ctx context.Context, id string) (*models.CardResponse, error) {
	card, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ResourceNotFound(apperrors.OriginCard, "Card", "id", id)
		}
		return nil, err
	}
	return s.toResponse(card)
}

func (s *CardService) GetCardByCardNumber(ctx context.Context, cardNumber string) (*models.CardResponse, error) {
	card, err := s.findCardByNumber(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	return s.toResponse(card)
}

func (s *CardService) ActivateCard(ctx context.Context, cardNumber string) (*models.CardResponse, error) {
	return s.setStatus(ctx, cardNumber, models.StatusActive)
}

func (s *CardService) DeactivateCard(ctx context.Context, cardNumber string) (*models.CardResponse, error) {
	return s.setStatus(ctx, cardNumber, models.StatusInactive)
}

func (s *CardService) setStatus(ctx context.Context, cardNumber string, status models.CardStatus) (*models.CardResponse, error) {
	card, err := s.findCardByNumber(ctx, cardNumber)
	if err != nil {
		return nil, err
	}

	card.Status = status
	if err := s.Repo.Update(ctx, card, card.ID); err != nil {
		return nil, err
	}
	return s.toResponse(card)
}

func (s *CardService) toResponse(card *models.Card) (*models.CardResponse, error) {
	number, err := s.Encryptor.Decrypt(card.CardNumber)
	if err != nil {
		return nil, fmt.Errorf("decrypting card number: %w", err)
	}
	return &models.CardResponse{
		ID:         card.ID,
		CardNumber: number,
		Status:     card.Status,
		Expiry:     card.Expiry,
		AccountID:  card.AccountID,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}, nil
}

func (s *CardService) findCardByNumber(ctx context.Context, cardNumber string) (*models.Card, error) {
	hash := s.Hasher.SearchHash(cardNumber)
	card, err := s.Repo.GetFirstBy(ctx, "card_number_hash = ?", hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ResourceNotFound(apperrors.OriginCard, "Card", "cardNumber", cardNumber)
		}
		return nil, err
	}
	return card, nil
}
