package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/sgcab/dispatch/internal/pkg/config"
	"github.com/sgcab/dispatch/internal/pkg/database"
	"github.com/sgcab/dispatch/internal/pkg/logger"
	"github.com/sgcab/dispatch/internal/pkg/middleware"
	"github.com/sgcab/dispatch/internal/pkg/models"
	nsqpkg "github.com/sgcab/dispatch/internal/pkg/nsq"
	accountHandler "github.com/sgcab/dispatch/services/accounts/handler/http"
	accountRepository "github.com/sgcab/dispatch/services/accounts/repository"
	accountUsecase "github.com/sgcab/dispatch/services/accounts/usecase"
	reportHandler "github.com/sgcab/dispatch/services/reports/handler/http"
	reportNSQHandler "github.com/sgcab/dispatch/services/reports/handler/nsq"
	reportRepository "github.com/sgcab/dispatch/services/reports/repository"
	reportUsecase "github.com/sgcab/dispatch/services/reports/usecase"
	tripGateway "github.com/sgcab/dispatch/services/trips/gateway"
	tripHandler "github.com/sgcab/dispatch/services/trips/handler/http"
	tripRepository "github.com/sgcab/dispatch/services/trips/repository"
	tripUsecase "github.com/sgcab/dispatch/services/trips/usecase"
)

func main() {
	appName := "dispatch"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)
	defer appLogger.Close()

	logger.Info("Starting application", logrus.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	})

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.Logger.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.Logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		appLogger.Logger.Fatalf("Failed to connect to NSQ: %v", err)
	}
	defer producer.Stop()

	clock := models.RealClock{}
	db := postgresClient.GetDB()

	// Trips service
	tripRepo := tripRepository.NewTripRepository(configs, db)
	tripGW := tripGateway.NewTripGW(producer, clock)
	tripUC := tripUsecase.NewTripUC(configs, clock, tripRepo, tripGW)
	tripH := tripHandler.NewTripHandler(tripUC)

	// Reports service
	reportRepo := reportRepository.NewReportRepository(configs, db)
	reportUC := reportUsecase.NewReportUC(configs, clock, reportRepo, redisClient)
	reportH := reportHandler.NewReportHandler(reportUC, clock)

	costConsumer, err := reportNSQHandler.NewCostHandler(reportUC, configs.NSQ)
	if err != nil {
		appLogger.Logger.Fatalf("Failed to start cost consumer: %v", err)
	}
	defer costConsumer.Stop()

	// Accounts service
	accountRepo := accountRepository.NewAccountRepository(configs, db)
	accountUC := accountUsecase.NewAccountUC(configs, clock, accountRepo, accountUsecase.NewBcryptHasher())
	accountH := accountHandler.NewAccountHandler(accountUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.PanicRecoveryMiddleware())

	public := e.Group("/api/v1")
	accountH.RegisterPublicRoutes(public)

	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(configs.JWT))
	tripH.RegisterRoutes(api)
	reportH.RegisterRoutes(api)
	accountH.RegisterRoutes(api)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": appName,
		})
	})

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		logger.Info("Starting HTTP server", logrus.Fields{
			"address": addr,
			"app":     appName,
		})
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Received shutdown signal", logrus.Fields{"signal": sig.String()})

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logrus.Fields{"error": err.Error()})
	}

	logger.Info("Server exiting gracefully", nil)
}
