package app

import "github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/handler"

func (a *App) RegisterRoutes(h *handler.TransactionHandler) {
	app := a.Router.Group("/api/transaction")
	app.POST("/create", h.CreateTransaction)
	app.GET("/:id", h.GetTransaction)
}
