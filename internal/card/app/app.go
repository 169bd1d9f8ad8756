package app

import (
	"fmt"
	"log"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/encryption"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/handler"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/service"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/config"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/repository/postgres"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.CardConfig
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.CardConfig) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Card{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	encryptor, err := encryption.NewEncryptor(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("failed to initialize encryptor: %v", err)
	}

	cardRepo := postgres.New[models.Card](db)
	cardService := service.NewCardService(cardRepo, encryptor, encryption.NewHasher(cfg.HashSecret))
	cardHandler := handler.NewCardHandler(cardService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(cardHandler)
}

func (a *App) Run() {
	if err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT)); err != nil {
		panic(err)
	}
}
