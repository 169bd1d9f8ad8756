package app

import "github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/handler"

func (a *App) RegisterRoutes(h *handler.CardHandler) {
	app := a.Router.Group("/api/card")
	app.POST("/create", h.CreateCard)
	app.GET("", h.GetCard)
	app.GET("/:id", h.GetCardByID)
	app.PUT("/activate", h.ActivateCard)
	app.PUT("/deactivate", h.DeactivateCard)
}
