package handler

import (
	"context"
	"net/http"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/httperr"
	"github.com/gin-gonic/gin"
)

type FraudService interface {
	CheckTransaction(ctx context.Context, req *models.FraudRequest) (*models.FraudResponse, error)
}

type FraudHandler struct {
	Service FraudService
}

func NewFraudHandler(s FraudService) *FraudHandler {
	return &FraudHandler{Service: s}
}

// POST /api/fraud/check
func (h *FraudHandler) CheckTransaction(c *gin.Context) {
	var req models.FraudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.Service.CheckTransaction(c.Request.Context(), &req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
