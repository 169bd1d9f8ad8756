package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/httperr"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/idempotency"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const idempotencyKeyHeader = "Idempotency-Key"

type TransactionService interface {
	CreateTransaction(ctx context.Context, req *models.TransactionRequest) (*models.TransactionResponse, error)
	GetTransactionByID(ctx context.Context, id string) (*models.TransactionResponse, error)
}

// IdempotencyStore guards repeated creates carrying the same key.
type IdempotencyStore interface {
	Claim(ctx context.Context, key string) (idempotency.ClaimState, string, error)
	Complete(ctx context.Context, key, transactionID string) error
	Release(ctx context.Context, key string) error
}

type TransactionHandler struct {
	Service     TransactionService
	Idempotency IdempotencyStore
}

func NewTransactionHandler(s TransactionService, store IdempotencyStore) *TransactionHandler {
	return &TransactionHandler{Service: s, Idempotency: store}
}

// POST /api/transaction/create
//
// An optional Idempotency-Key header makes the create safe to retry: a
// repeated key replays the already-created transaction with 200 instead of
// running the workflow again; a key whose first request is still running gets
// 409.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}
	if !req.TransactionAmount.IsPositive() {
		httperr.BadRequest(c, "transactionAmount must be positive")
		return
	}

	ctx := c.Request.Context()
	key := c.GetHeader(idempotencyKeyHeader)

	if key != "" && h.Idempotency != nil {
		state, existingID, err := h.Idempotency.Claim(ctx, key)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		switch state {
		case idempotency.StateInFlight:
			c.JSON(http.StatusConflict, apperrors.ErrorResponse{
				APIPath:      c.Request.URL.Path,
				ErrorCode:    http.StatusConflict,
				ErrorMessage: "a request with this idempotency key is already in progress",
				ErrorTime:    time.Now().UTC(),
			})
			return
		case idempotency.StateCompleted:
			resp, err := h.Service.GetTransactionByID(ctx, existingID)
			if err != nil {
				httperr.Respond(c, err)
				return
			}
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.Service.CreateTransaction(ctx, &req)
	if err != nil {
		// Failures after the balance moved keep the key claimed: releasing
		// it would let a retry debit the account a second time. The claim
		// expires with its TTL once the attempt is reconciled.
		if key != "" && h.Idempotency != nil && !service.IsBalanceMoved(err) {
			if releaseErr := h.Idempotency.Release(ctx, key); releaseErr != nil {
				logrus.Errorf("Failed to release idempotency key: %v", releaseErr)
			}
		}
		httperr.Respond(c, err)
		return
	}

	if key != "" && h.Idempotency != nil {
		if err := h.Idempotency.Complete(ctx, key, resp.ID); err != nil {
			logrus.Errorf("Failed to record idempotency key for transaction %s: %v", resp.ID, err)
		}
	}

	c.JSON(http.StatusCreated, resp)
}

// GET /api/transaction/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	resp, err := h.Service.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
