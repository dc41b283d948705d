package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/payguard/payguard/internal/pkg/config"
	"github.com/payguard/payguard/internal/pkg/database"
	"github.com/payguard/payguard/internal/pkg/feed"
	"github.com/payguard/payguard/internal/pkg/health"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/pkg/middleware"
	natspkg "github.com/payguard/payguard/internal/pkg/nats"
	"github.com/payguard/payguard/internal/pkg/server"
	"github.com/payguard/payguard/services/payment/gateway"
	"github.com/payguard/payguard/services/payment/handler"
	httpHandler "github.com/payguard/payguard/services/payment/handler/http"
	wsHandler "github.com/payguard/payguard/services/payment/handler/websocket"
	"github.com/payguard/payguard/services/payment/repository"
	"github.com/payguard/payguard/services/payment/usecase"
)

func main() {
	appName := "payguard"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	policyRepo := repository.NewPolicyRepo(configs, postgresClient.GetDB(), redisClient)
	activityRepo := repository.NewActivityRepo(postgresClient.GetDB())

	// Initialize gateways
	executorGW := gateway.NewExecutorGW(configs.Executor)
	eventsGW := gateway.NewEventsGW(natsClient)

	// Initialize use case
	hub := feed.NewHub(configs.Feed.BufferSize)
	paymentUC := usecase.NewPaymentUC(configs, policyRepo, activityRepo, executorGW, eventsGW, hub)

	// Initialize handlers
	paymentHandler := httpHandler.NewPaymentHandler(paymentUC)
	streamHandler := wsHandler.NewActivityStreamHandler(paymentUC)
	h := handler.NewHandler(paymentHandler, streamHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
