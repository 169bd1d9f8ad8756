package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/policy"
	"github.com/sirupsen/logrus"
)

// AuditRepo defines the audit-trail operations the fraud service needs.
type AuditRepo interface {
	Create(ctx context.Context, entry *models.FraudAuditLog) error
	CountByCardAfter(ctx context.Context, cardID string, cutoff time.Time) (int64, error)
}

// FraudService evaluates transactions against the configured policy and keeps
// the audit trail the sliding window is computed from.
type FraudService struct {
	Repo   AuditRepo
	Policy policy.Policy

	// now is swappable for tests.
	now func() time.Time
}

func NewFraudService(repo AuditRepo, p policy.Policy) *FraudService {
	return &FraudService{
		Repo:   repo,
		Policy: p,
		now:    time.Now,
	}
}

// CheckTransaction runs the fraud rules for one attempt. The audit row is
// appended for every evaluation, approved or rejected, after the window count
// is taken.
func (s *FraudService) CheckTransaction(ctx context.Context, req *models.FraudRequest) (*models.FraudResponse, error) {
	cutoff := s.now().Add(-s.Policy.Window)
	priorCount, err := s.Repo.CountByCardAfter(ctx, req.CardID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("counting attempts in window: %w", err)
	}

	decision := policy.Evaluate(req.Amount, s.Policy, priorCount)
	if !decision.Approved {
		logrus.Warnf("Fraudulent transaction detected for card %s: %s", req.CardID, decision.Reason)
	}

	if err := s.Repo.Create(ctx, &models.FraudAuditLog{CardID: req.CardID}); err != nil {
		return nil, fmt.Errorf("appending audit record: %w", err)
	}

	return &models.FraudResponse{
		IsFraudulent:    !decision.Approved,
		RejectionReason: decision.Reason,
	}, nil
}
