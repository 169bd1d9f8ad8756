package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountRepo defines the persistence operations the account service needs,
// including the two atomic balance primitives.
type AccountRepo interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account, id string) error
	Delete(ctx context.Context, id string) error
	DebitBalance(ctx context.Context, id string, amount decimal.Decimal) (int64, error)
	CreditBalance(ctx context.Context, id string, amount decimal.Decimal) (int64, error)
}

// AccountService owns account lifecycle and the conditional balance update
// consumed by the transaction orchestrator.
type AccountService struct {
	Repo AccountRepo
}

func NewAccountService(repo AccountRepo) *AccountService {
	return &AccountService{Repo: repo}
}

func (s *AccountService) CreateAccount(ctx context.Context, req *models.AccountRequest) (*models.Account, error) {
	req.Sanitize()
	account := req.ToEntity()
	if !account.Status.IsValid() {
		return nil, apperrors.NewBadRequest(apperrors.OriginAccount, fmt.Sprintf("invalid account status: %s", account.Status))
	}

	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ResourceNotFound(apperrors.OriginAccount, "Account", "id", id)
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, id string, req *models.AccountRequest) (*models.Account, error) {
	account, err := s.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Sanitize()
	account.Status = models.AccountStatus(req.Status)
	account.Balance = req.Balance
	if !account.Status.IsValid() {
		return nil, apperrors.NewBadRequest(apperrors.OriginAccount, fmt.Sprintf("invalid account status: %s", account.Status))
	}

	if err := s.Repo.Update(ctx, account, id); err != nil {
		return nil, err
	}
	return account, nil
}

// AdjustBalance applies a credit or debit through the atomic conditional
// update and returns the fresh snapshot. A zero-rows result surfaces as a
// business error, never as a silent no-op.
func (s *AccountService) AdjustBalance(ctx context.Context, id string, amount decimal.Decimal, transactionType string) (*models.Account, error) {
	if amount.IsNegative() || amount.IsZero() {
		return nil, apperrors.NewBadRequest(apperrors.OriginAccount, "amount must be positive")
	}

	switch models.TransactionType(transactionType) {
	case models.TypeDebit:
		rows, err := s.Repo.DebitBalance(ctx, id, amount)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, apperrors.NewBusiness(apperrors.OriginAccount, "Insufficient funds or account not found")
		}
	case models.TypeCredit:
		rows, err := s.Repo.CreditBalance(ctx, id, amount)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, apperrors.NewBusiness(apperrors.OriginAccount, "account not found")
		}
	default:
		return nil, apperrors.NewBadRequest(apperrors.OriginAccount, fmt.Sprintf("invalid transaction type: %s", transactionType))
	}

	return s.GetAccountByID(ctx, id)
}

func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	if _, err := s.GetAccountByID(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
