package clients

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/models"
	"github.com/shopspring/decimal"
)

// AccountClient reads accounts and applies the conditional balance update.
type AccountClient struct {
	baseClient
}

func NewAccountClient(baseURL string, timeout time.Duration) *AccountClient {
	return &AccountClient{newBaseClient(baseURL, apperrors.OriginAccount, timeout)}
}

func (c *AccountClient) GetAccountByID(ctx context.Context, id string) (*models.AccountResponse, error) {
	endpoint := c.baseURL + "/api/account/" + url.PathEscape(id)

	var account models.AccountResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// AdjustBalance invokes the account service's atomic debit/credit. A
// conditional update that affected zero rows upstream comes back as a
// business error, not a fresh snapshot.
func (c *AccountClient) AdjustBalance(ctx context.Context, id string, amount decimal.Decimal, transactionType models.TransactionType) (*models.AccountResponse, error) {
	query := url.Values{}
	query.Set("amount", amount.String())
	query.Set("type", string(transactionType))
	endpoint := c.baseURL + "/api/account/" + url.PathEscape(id) + "/balance?" + query.Encode()

	var account models.AccountResponse
	if err := c.doJSON(ctx, http.MethodPut, endpoint, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
