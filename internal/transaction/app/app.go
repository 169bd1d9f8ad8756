package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/config"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/clients"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/handler"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/idempotency"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/models"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/repository"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/service"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/pkg/publisher"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type App struct {
	config *config.TransactionConfig
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.TransactionConfig) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Transaction{}, &models.TransactionRejection{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	transactionRepo := repository.New(db)
	cardClient := clients.NewCardClient(cfg.CardServiceURL, cfg.ClientTimeout)
	accountClient := clients.NewAccountClient(cfg.AccountServiceURL, cfg.ClientTimeout)
	fraudClient := clients.NewFraudClient(cfg.FraudServiceURL, cfg.ClientTimeout)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	outcomePublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	transactionService := service.NewTransactionService(transactionRepo, cardClient, accountClient, fraudClient, outcomePublisher)
	idempotencyStore := idempotency.NewStore(redisClient, cfg.Redis.KeyTTL)
	transactionHandler := handler.NewTransactionHandler(transactionService, idempotencyStore)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(transactionHandler)
}

func (a *App) Run() {
	if err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT)); err != nil {
		panic(err)
	}
}
