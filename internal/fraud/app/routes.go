package app

import "github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/handler"

func (a *App) RegisterRoutes(h *handler.FraudHandler) {
	app := a.Router.Group("/api/fraud")
	app.POST("/check", h.CheckTransaction)
}
