package handler

import (
	"context"
	"net/http"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/httperr"
	"github.com/gin-gonic/gin"
)

type CardService interface {
	CreateCard(ctx context.Context, req *models.CardRequest) (*models.CardResponse, error)
	GetCardByID(ctx context.Context, id string) (*models.CardResponse, error)
	GetCardByCardNumber(ctx context.Context, cardNumber string) (*models.CardResponse, error)
	ActivateCard(ctx context.Context, cardNumber string) (*models.CardResponse, error)
	DeactivateCard(ctx context.Context, cardNumber string) (*models.CardResponse, error)
}

type CardHandler struct {
	Service CardService
}

func NewCardHandler(s CardService) *CardHandler {
	return &CardHandler{Service: s}
}

// POST /api/card/create
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req models.CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	card, err := h.Service.CreateCard(c.Request.Context(), &req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// GET /api/card?cardNumber=
func (h *CardHandler) GetCard(c *gin.Context) {
	cardNumber := c.Query("cardNumber")
	if cardNumber == "" {
		httperr.BadRequest(c, "cardNumber is required")
		return
	}

	card, err := h.Service.GetCardByCardNumber(c.Request.Context(), cardNumber)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// GET /api/card/:id
func (h *CardHandler) GetCardByID(c *gin.Context) {
	card, err := h.Service.GetCardByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// PUT /api/card/activate?cardNumber=
func (h *CardHandler) ActivateCard(c *gin.Context) {
	h.setStatus(c, h.Service.ActivateCard)
}

// PUT /api/card/deactivate?cardNumber=
func (h *CardHandler) DeactivateCard(c *gin.Context) {
	h.setStatus(c, h.Service.DeactivateCard)
}

func (h *CardHandler) setStatus(c *gin.Context, apply func(context.Context, string) (*models.CardResponse, error)) {
	cardNumber := c.Query("cardNumber")
	if cardNumber == "" {
		httperr.BadRequest(c, "cardNumber is required")
		return
	}

	card, err := apply(c.Request.Context(), cardNumber)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}
