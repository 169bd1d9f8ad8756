package handler

import (
	"context"
	"net/http"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/httperr"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req *models.AccountRequest) (*models.Account, error)
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)
	UpdateAccount(ctx context.Context, id string, req *models.AccountRequest) (*models.Account, error)
	AdjustBalance(ctx context.Context, id string, amount decimal.Decimal, transactionType string) (*models.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

type AccountHandler struct {
	Service AccountService
}

func NewAccountHandler(s AccountService) *AccountHandler {
	return &AccountHandler{Service: s}
}

// POST /api/account/create
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req models.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	account, err := h.Service.CreateAccount(c.Request.Context(), &req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// GET /api/account/:id
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.Service.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// PUT /api/account/:id
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	var req models.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	account, err := h.Service.UpdateAccount(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// PUT /api/account/:id/balance?amount=&type=
func (h *AccountHandler) AdjustBalance(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		httperr.BadRequest(c, "invalid amount")
		return
	}

	account, err := h.Service.AdjustBalance(c.Request.Context(), c.Param("id"), amount, c.Query("type"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// DELETE /api/account/:id
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	if err := h.Service.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
