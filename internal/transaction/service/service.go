package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BalanceMovedError wraps a failure that happened after the account balance
// was already mutated. A caller holding an idempotency key must keep the
// claim for such failures: a blind retry would run the workflow again and
// move the money twice.
type BalanceMovedError struct {
	Err error
}

func (e *BalanceMovedError) Error() string {
	return e.Err.Error()
}

func (e *BalanceMovedError) Unwrap() error {
	return e.Err
}

// IsBalanceMoved reports whether err occurred after the balance mutation.
func IsBalanceMoved(err error) bool {
	var moved *BalanceMovedError
	return errors.As(err, &moved)
}

// CardClient resolves a card number to a card record.
type CardClient interface {
	GetCardByNumber(ctx context.Context, cardNumber string) (*models.CardResponse, error)
}

// AccountClient reads account snapshots and applies the atomic balance
// update.
type AccountClient interface {
	GetAccountByID(ctx context.Context, id string) (*models.AccountResponse, error)
	AdjustBalance(ctx context.Context, id string, amount decimal.Decimal, transactionType models.TransactionType) (*models.AccountResponse, error)
}

// FraudClient evaluates an attempt against the fraud service.
type FraudClient interface {
	CheckFraud(ctx context.Context, req *models.FraudCheckRequest) (*models.FraudCheckResponse, error)
}

// TransactionRepo persists finalized attempts.
type TransactionRepo interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
}

// Publisher emits outcome events after persistence.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// TransactionService is the orchestration core: it sequences card lookup,
// account lookup, validation, fraud evaluation, the conditional balance
// update, and persistence of the outcome.
//
// Validation failures and fraud rejections are business outcomes, persisted
// as REJECTED attempts. Only infrastructure failures and resolution failures
// from the first two steps escape as errors, and those leave no record.
type TransactionService struct {
	Repo      TransactionRepo
	Cards     CardClient
	Accounts  AccountClient
	Fraud     FraudClient
	Publisher Publisher

	// now is swappable for tests.
	now func() time.Time
}

func NewTransactionService(repo TransactionRepo, cards CardClient, accounts AccountClient, fraud FraudClient, publisher Publisher) *TransactionService {
	return &TransactionService{
		Repo:      repo,
		Cards:     cards,
		Accounts:  accounts,
		Fraud:     fraud,
		Publisher: publisher,
		now:       time.Now,
	}
}

// CreateTransaction runs the full workflow for one attempt. The order is
// significant: card validation before account validation before fraud, each
// earlier failure short-circuiting everything after it; the balance is only
// touched once every check has passed.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *models.TransactionRequest) (*models.TransactionResponse, error) {
	req.Sanitize()

	card, err := s.Cards.GetCardByNumber(ctx, req.CardNumber)
	if err != nil {
		return nil, err
	}
	account, err := s.Accounts.GetAccountByID(ctx, card.AccountID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		TransactionAmount: req.TransactionAmount,
		TransactionType:   models.TransactionType(req.TransactionType),
		AccountID:         card.AccountID,
		CardID:            card.ID,
	}

	if reason, ok := validateCard(card, s.today()); !ok {
		return s.finalizeRejection(ctx, transaction, reason, false)
	}
	if reason, ok := validateAccount(account, req); !ok {
		return s.finalizeRejection(ctx, transaction, reason, false)
	}

	fraudResp, err := s.Fraud.CheckFraud(ctx, &models.FraudCheckRequest{
		CardID: card.ID,
		Amount: req.TransactionAmount,
	})
	if err != nil {
		return nil, err
	}
	if fraudResp.IsFraudulent {
		return s.finalizeRejection(ctx, transaction, fraudResp.RejectionReason, true)
	}

	// Zero rows affected upstream surfaces here as a business error: the
	// advisory balance check above passed, so this is a lost race or a
	// vanished account, not an ordinary rejection. It propagates and no
	// attempt is recorded.
	if _, err := s.Accounts.AdjustBalance(ctx, card.AccountID, req.TransactionAmount, transaction.TransactionType); err != nil {
		return nil, err
	}

	transaction.Status = models.StatusApproved
	if err := s.Repo.Create(ctx, transaction); err != nil {
		return nil, &BalanceMovedError{Err: fmt.Errorf("persisting approved transaction: %w", err)}
	}
	logrus.Infof("Transaction %s approved", transaction.ID)

	s.publishOutcome(ctx, transaction)
	return models.ToResponse(transaction), nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, id string) (*models.TransactionResponse, error) {
	transaction, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ResourceNotFound(apperrors.OriginTransaction, "Transaction", "id", id)
		}
		return nil, err
	}
	return models.ToResponse(transaction), nil
}

func (s *TransactionService) finalizeRejection(ctx context.Context, transaction *models.Transaction, reason string, isFraudulent bool) (*models.TransactionResponse, error) {
	transaction.Status = models.StatusRejected
	transaction.Rejection = &models.TransactionRejection{
		Reason:       reason,
		IsFraudulent: isFraudulent,
	}

	if err := s.Repo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("persisting rejected transaction: %w", err)
	}
	logrus.Infof("Transaction %s rejected: %s", transaction.ID, reason)

	s.publishOutcome(ctx, transaction)
	return models.ToResponse(transaction), nil
}

func (s *TransactionService) publishOutcome(ctx context.Context, transaction *models.Transaction) {
	if s.Publisher == nil {
		return
	}

	event := models.TransactionCompletedEvent{
		TransactionID: transaction.ID,
		Status:        transaction.Status,
		Amount:        transaction.TransactionAmount,
		Type:          transaction.TransactionType,
		CardID:        transaction.CardID,
		AccountID:     transaction.AccountID,
		CompletedAt:   s.now().UTC(),
	}
	if transaction.Rejection != nil {
		event.IsFraudulent = transaction.Rejection.IsFraudulent
		event.Reason = transaction.Rejection.Reason
	}

	// The attempt is already durable; a publish failure must not fail it.
	if err := s.Publisher.Publish(ctx, models.TransactionCompletedTopic, event); err != nil {
		logrus.Errorf("Failed to publish outcome for transaction %s: %v", transaction.ID, err)
	}
}

func (s *TransactionService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
