package clients

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/models"
)

// CardClient resolves card numbers against the card service.
type CardClient struct {
	baseClient
}

func NewCardClient(baseURL string, timeout time.Duration) *CardClient {
	return &CardClient{newBaseClient(baseURL, apperrors.OriginCard, timeout)}
}

func (c *CardClient) GetCardByNumber(ctx context.Context, cardNumber string) (*models.CardResponse, error) {
	endpoint := c.baseURL + "/api/card?cardNumber=" + url.QueryEscape(cardNumber)

	var card models.CardResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}
