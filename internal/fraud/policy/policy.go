package policy

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxAttemptsInWindow is the frequency ceiling: an attempt is rejected once
// this many prior evaluations fall inside the policy window.
const MaxAttemptsInWindow = 8

// Policy is the single system-wide fraud policy. It is loaded once at startup
// and never mutated; there is no policy table.
type Policy struct {
	AmountCeiling decimal.Decimal
	Window        time.Duration
}

func New(amountCeiling string, window time.Duration) (Policy, error) {
	ceiling, err := decimal.NewFromString(amountCeiling)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid amount ceiling %q: %w", amountCeiling, err)
	}
	if ceiling.IsNegative() || ceiling.IsZero() {
		return Policy{}, errors.New("amount ceiling must be positive")
	}
	if window <= 0 {
		return Policy{}, errors.New("window must be positive")
	}
	return Policy{AmountCeiling: ceiling, Window: window}, nil
}

// Decision is the evaluator's verdict. Reason is empty when approved.
type Decision struct {
	Approved bool
	Reason   string
}

// Evaluate applies the fraud rules to one attempt. The amount-ceiling rule
// wins over the frequency rule when both would reject. Pure function: the
// caller supplies the prior-attempt count for the window.
func Evaluate(amount decimal.Decimal, p Policy, priorCountInWindow int64) Decision {
	if amount.GreaterThan(p.AmountCeiling) {
		return Decision{
			Reason: fmt.Sprintf("Transaction amount exceeds $%s", p.AmountCeiling.StringFixed(2)),
		}
	}
	if priorCountInWindow >= MaxAttemptsInWindow {
		return Decision{
			Reason: fmt.Sprintf("Frequency limit exceeded: more than %d transactions in %s", MaxAttemptsInWindow, p.Window),
		}
	}
	return Decision{Approved: true}
}
