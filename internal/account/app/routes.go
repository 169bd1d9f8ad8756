package app

import "github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/handler"

func (a *App) RegisterRoutes(h *handler.AccountHandler) {
	app := a.Router.Group("/api/account")
	app.POST("/create", h.CreateAccount)
	app.GET("/:id", h.GetAccount)
	app.PUT("/:id", h.UpdateAccount)
	app.PUT("/:id/balance", h.AdjustBalance)
	app.DELETE("/:id", h.DeleteAccount)
}
