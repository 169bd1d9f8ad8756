package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
)

// baseClient is the shared JSON-over-HTTP plumbing for the three
// collaborators. Non-2xx responses go through the error classifier with this
// client's origin so a 404 from the card service and a 404 from the account
// service stay distinguishable.
type baseClient struct {
	baseURL string
	origin  apperrors.Origin
	client  *http.Client
}

func newBaseClient(baseURL string, origin apperrors.Origin, timeout time.Duration) baseClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return baseClient{
		baseURL: baseURL,
		origin:  origin,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *baseClient) doJSON(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.ClassifyTransport(c.origin, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.ClassifyTransport(c.origin, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apperrors.Classify(c.origin, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperrors.NewServiceUnavailable(c.origin,
				fmt.Sprintf("malformed response from %s service: %v", c.origin, err))
		}
	}
	return nil
}
