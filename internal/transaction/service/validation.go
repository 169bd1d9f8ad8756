package service

import (
	"fmt"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/models"
)

const (
	statusInactive = "INACTIVE"

	reasonInactiveCard      = "Transaction failed. Card is INACTIVE"
	reasonInactiveAccount   = "Transaction failed. Account is INACTIVE"
	reasonInsufficientFunds = "Transaction failed. Account has insufficient funds."
)

// validateCard rejects inactive and expired cards. A card expiring today is
// still usable; only a date strictly before today fails.
func validateCard(card *models.CardResponse, today time.Time) (string, bool) {
	if card.Status == statusInactive {
		return reasonInactiveCard, false
	}
	if card.Expiry.Time.Before(today) {
		return fmt.Sprintf("Transaction failed. Card expired on %s", card.Expiry.Format("2006-01-02")), false
	}
	return "", true
}

// validateAccount rejects inactive accounts, and short balances for debits.
// The balance check here is advisory: the authoritative guard is the account
// service's conditional update at the mutation step.
func validateAccount(account *models.AccountResponse, req *models.TransactionRequest) (string, bool) {
	if account.Status == statusInactive {
		return reasonInactiveAccount, false
	}
	if models.TransactionType(req.TransactionType) == models.TypeDebit &&
		account.Balance.LessThan(req.TransactionAmount) {
		return reasonInsufficientFunds, false
	}
	return "", true
}
