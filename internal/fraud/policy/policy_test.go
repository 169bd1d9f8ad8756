package policy_test

import (
	"testing"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/policy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPolicy(t *testing.T) policy.Policy {
	p, err := policy.New("10000", time.Hour)
	require.NoError(t, err)
	return p
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		ceiling string
		window  time.Duration
		wantErr bool
	}{
		{name: "valid", ceiling: "10000", window: time.Hour},
		{name: "unparseable ceiling", ceiling: "ten thousand", window: time.Hour, wantErr: true},
		{name: "zero ceiling", ceiling: "0", window: time.Hour, wantErr: true},
		{name: "negative ceiling", ceiling: "-1", window: time.Hour, wantErr: true},
		{name: "zero window", ceiling: "10000", window: 0, wantErr: true},
		{name: "negative window", ceiling: "10000", window: -time.Minute, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := policy.New(tt.ceiling, tt.window)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEvaluate_AmountCeiling(t *testing.T) {
	p := defaultPolicy(t)

	atCeiling := policy.Evaluate(decimal.RequireFromString("10000.00"), p, 0)
	assert.True(t, atCeiling.Approved)

	overCeiling := policy.Evaluate(decimal.RequireFromString("10000.01"), p, 0)
	assert.False(t, overCeiling.Approved)
	assert.Equal(t, "Transaction amount exceeds $10000.00", overCeiling.Reason)
}

func TestEvaluate_FrequencyLimit(t *testing.T) {
	p := defaultPolicy(t)
	amount := decimal.RequireFromString("50.00")

	underLimit := policy.Evaluate(amount, p, 7)
	assert.True(t, underLimit.Approved)
	assert.Empty(t, underLimit.Reason)

	atLimit := policy.Evaluate(amount, p, 8)
	assert.False(t, atLimit.Approved)
	assert.Equal(t, "Frequency limit exceeded: more than 8 transactions in 1h0m0s", atLimit.Reason)
}

func TestEvaluate_AmountRuleWinsWhenBothReject(t *testing.T) {
	p := defaultPolicy(t)

	decision := policy.Evaluate(decimal.RequireFromString("20000.00"), p, 100)

	assert.False(t, decision.Approved)
	assert.Equal(t, "Transaction amount exceeds $10000.00", decision.Reason)
}

func TestEvaluate_Deterministic(t *testing.T) {
	p := defaultPolicy(t)
	amount := decimal.RequireFromString("9999.99")

	first := policy.Evaluate(amount, p, 3)
	second := policy.Evaluate(amount, p, 3)

	assert.Equal(t, first, second)
	assert.True(t, first.Approved)
}
