package clients

import (
	"context"
	"net/http"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/models"
)

// FraudClient runs the fraud check against the fraud service.
type FraudClient struct {
	baseClient
}

func NewFraudClient(baseURL string, timeout time.Duration) *FraudClient {
	return &FraudClient{newBaseClient(baseURL, apperrors.OriginFraud, timeout)}
}

func (c *FraudClient) CheckFraud(ctx context.Context, req *models.FraudCheckRequest) (*models.FraudCheckResponse, error) {
	endpoint := c.baseURL + "/api/fraud/check"

	var resp models.FraudCheckResponse
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
