package app

import (
	"fmt"
	"log"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/handler"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/repository"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/account/service"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/config"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.AccountConfig
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.AccountConfig) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Account{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	accountRepo := repository.New(db)
	accountService := service.NewAccountService(accountRepo)
	accountHandler := handler.NewAccountHandler(accountService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(accountHandler)
}

func (a *App) Run() {
	if err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT)); err != nil {
		panic(err)
	}
}
