package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load fills cfg from the environment, preferring a local .env file when one
// exists. cfg must be a pointer to a struct with env tags.
func Load(cfg interface{}) error {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("No .env file found, reading environment directly")
	}
	return env.Parse(cfg)
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST" envDefault:"localhost"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"transactions.completed"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Redis struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	KeyTTL   time.Duration `env:"REDIS_IDEMPOTENCY_TTL" envDefault:"24h"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// AccountConfig configures the account service.
type AccountConfig struct {
	APP
	DB
}

func NewAccountConfig() (*AccountConfig, error) {
	var cfg AccountConfig
	if err := Load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CardConfig configures the card service. The encryption key protects card
// numbers at rest and the hash secret makes the lookup hash non-reversible.
type CardConfig struct {
	APP
	DB
	EncryptionKey string `env:"CARD_ENCRYPTION_KEY,required"`
	HashSecret    string `env:"CARD_HASH_SECRET,required"`
}

func NewCardConfig() (*CardConfig, error) {
	var cfg CardConfig
	if err := Load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FraudConfig configures the fraud service. The policy values are loaded once
// at startup; there is no policy table.
type FraudConfig struct {
	APP
	DB
	AmountCeiling string        `env:"FRAUD_AMOUNT_CEILING" envDefault:"10000"`
	Window        time.Duration `env:"FRAUD_WINDOW" envDefault:"1h"`
}

func NewFraudConfig() (*FraudConfig, error) {
	var cfg FraudConfig
	if err := Load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TransactionConfig configures the transaction service, including the base
// URLs of its three collaborators.
type TransactionConfig struct {
	APP
	DB
	Kafka
	Redis
	CardServiceURL    string        `env:"CARD_SERVICE_URL" envDefault:"http://localhost:8082"`
	AccountServiceURL string        `env:"ACCOUNT_SERVICE_URL" envDefault:"http://localhost:8081"`
	FraudServiceURL   string        `env:"FRAUD_SERVICE_URL" envDefault:"http://localhost:8083"`
	ClientTimeout     time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`
}

func NewTransactionConfig() (*TransactionConfig, error) {
	var cfg TransactionConfig
	if err := Load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
