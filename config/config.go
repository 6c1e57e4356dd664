package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Auth
	Mail
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Kafka struct {
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string `env:"KAFKA_GROUP_ID" envDefault:"compras-service"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"transacoes.requisicoes,transacoes.respostas,transacoes.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"transacoes.requisicoes,transacoes.respostas"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Auth struct {
	ProviderURL       string        `env:"AUTH_PROVIDER_URL" envDefault:"http://localhost:9090"`
	Timeout           time.Duration `env:"AUTH_TIMEOUT" envDefault:"5s"`
	SimulationEnabled bool          `env:"AUTH_SIMULATION_ENABLED" envDefault:"true"`
	SuccessRate       float64       `env:"AUTH_SIMULATION_SUCCESS_RATE" envDefault:"0.8"`
}

type Mail struct {
	SMTPHost     string `env:"MAIL_SMTP_HOST" envDefault:"localhost"`
	SMTPPort     int    `env:"MAIL_SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"MAIL_SMTP_USERNAME"`
	SMTPPassword string `env:"MAIL_SMTP_PASSWORD"`
	From         string `env:"MAIL_FROM" envDefault:"nao-responda@bancotranquilo.com"`
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
