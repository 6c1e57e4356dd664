package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bancotranquilo/compras-service/config"
	"github.com/bancotranquilo/compras-service/internal/authorizer"
	"github.com/bancotranquilo/compras-service/internal/clock"
	"github.com/bancotranquilo/compras-service/internal/handlers"
	"github.com/bancotranquilo/compras-service/internal/metrics"
	"github.com/bancotranquilo/compras-service/internal/models"
	"github.com/bancotranquilo/compras-service/internal/notifier"
	"github.com/bancotranquilo/compras-service/internal/publisher"
	"github.com/bancotranquilo/compras-service/internal/repository/posgrest"
	"github.com/bancotranquilo/compras-service/internal/service"
	"github.com/bancotranquilo/compras-service/internal/subscriber"
	"github.com/bancotranquilo/compras-service/internal/worker"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Purchase{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.Register()

	purchaseRepo := posgrest.New[models.Purchase](db)
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	pub := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.GetRetryConfig())

	clk := clock.NewSystem()
	var simulator authorizer.OutcomeSimulator
	if cfg.Auth.SimulationEnabled {
		simulator = authorizer.NewRandSimulator(time.Now().UnixNano(), cfg.Auth.SuccessRate)
	}
	authClient := authorizer.NewClient(cfg.Auth.ProviderURL, cfg.Auth.Timeout, simulator, clk)

	mailer := notifier.NewEmailNotifier(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SMTPUsername, cfg.Mail.SMTPPassword, cfg.Mail.From)
	purchaseService := service.NewPurchaseService(purchaseRepo, pub, mailer, clk)
	transactionWorker := worker.NewTransactionWorker(authClient, pub)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, transactionWorker)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(purchaseHandler)

	a.initSubscribers(purchaseHandler, pub, cfg.GetRetryConfig())
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initSubscribers(purchaseHandler *handlers.PurchaseHandler, pub *publisher.KafkaPublisher, retryConfig config.RetryConfig) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.ConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, pub, retryConfig)

	ctx := context.Background()
	consumer.Listen(ctx, func(topic string, value []byte) error {
		logrus.Debugf("received message topic=%s value=%s", topic, string(value))
		return purchaseHandler.HandleEvents(ctx, topic, value)
	})
}
