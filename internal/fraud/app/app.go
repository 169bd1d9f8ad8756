package app

import (
	"fmt"
	"log"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/config"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/handler"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/policy"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/repository"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/fraud/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.FraudConfig
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.FraudConfig) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.FraudAuditLog{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	// A service without a usable policy must not come up.
	fraudPolicy, err := policy.New(cfg.AmountCeiling, cfg.Window)
	if err != nil {
		log.Fatalf("invalid fraud policy: %v", err)
	}
	logrus.Infof("Fraud policy loaded: ceiling=%s window=%s", fraudPolicy.AmountCeiling, fraudPolicy.Window)

	auditRepo := repository.New(db)
	fraudService := service.NewFraudService(auditRepo, fraudPolicy)
	fraudHandler := handler.NewFraudHandler(fraudService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(fraudHandler)
}

func (a *App) Run() {
	if err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT)); err != nil {
		panic(err)
	}
}
