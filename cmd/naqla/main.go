package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/internal/pkg/config"
	"github.com/naqla-app/naqla/internal/pkg/database"
	"github.com/naqla-app/naqla/internal/pkg/health"
	httppkg "github.com/naqla-app/naqla/internal/pkg/http"
	"github.com/naqla-app/naqla/internal/pkg/logger"
	"github.com/naqla-app/naqla/internal/pkg/middleware"
	nsqpkg "github.com/naqla-app/naqla/internal/pkg/nsq"

	accountsHandler "github.com/naqla-app/naqla/services/accounts/handler"
	accountsHTTP "github.com/naqla-app/naqla/services/accounts/handler/http"
	accountsRepo "github.com/naqla-app/naqla/services/accounts/repository"
	accountsUC "github.com/naqla-app/naqla/services/accounts/usecase"

	fleetHandler "github.com/naqla-app/naqla/services/fleet/handler"
	fleetHTTP "github.com/naqla-app/naqla/services/fleet/handler/http"
	fleetRepo "github.com/naqla-app/naqla/services/fleet/repository"
	fleetUC "github.com/naqla-app/naqla/services/fleet/usecase"

	"github.com/naqla-app/naqla/services/loads/gateway"
	loadsHandler "github.com/naqla-app/naqla/services/loads/handler"
	loadsHTTP "github.com/naqla-app/naqla/services/loads/handler/http"
	loadsRepo "github.com/naqla-app/naqla/services/loads/repository"
	loadsUC "github.com/naqla-app/naqla/services/loads/usecase"

	statsHandler "github.com/naqla-app/naqla/services/stats/handler"
	statsHTTP "github.com/naqla-app/naqla/services/stats/handler/http"
	statsRepo "github.com/naqla-app/naqla/services/stats/repository"
	statsUC "github.com/naqla-app/naqla/services/stats/usecase"
)

const defaultMigrationsPath = "migrations"

func main() {
	appName := "naqla"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = defaultMigrationsPath
	}
	if err := database.RunMigrations(migrationsPath, configs.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// NSQ producer (optional)
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			log.Fatalf("Failed to connect to NSQ: %v", err)
		}
		defer producer.Stop()
	} else {
		logger.Warn("NSQ messaging disabled, load events will be dropped")
	}

	db := postgresClient.GetDB()

	// Accounts service
	accountRepository := accountsRepo.NewAccountRepo(configs, db, redisClient)
	accountUsecase := accountsUC.NewAccountUC(accountRepository, configs)
	authHandler := accountsHTTP.NewAuthHandler(accountUsecase)
	profileHandler := accountsHTTP.NewProfileHandler(accountUsecase)
	accountsH := accountsHandler.NewHandler(authHandler, profileHandler)

	// Fleet service
	fleetRepository := fleetRepo.NewFleetRepo(configs, db)
	fleetUsecase := fleetUC.NewFleetUC(fleetRepository, configs)
	fleetH := fleetHandler.NewHandler(fleetHTTP.NewFleetHandler(fleetUsecase))

	// Loads service
	routingClient := httppkg.NewClient(configs.Routing.BaseURL,
		time.Duration(configs.Routing.TimeoutSeconds)*time.Second)
	loadGateway := gateway.NewLoadGW(configs, producer, routingClient)
	loadRepository := loadsRepo.NewLoadRepo(configs, db)
	loadUsecase := loadsUC.NewLoadUC(loadRepository, loadGateway, configs)
	loadsH := loadsHandler.NewHandler(loadsHTTP.NewLoadHandler(loadUsecase))

	// Stats service
	statsRepository := statsRepo.NewStatsRepo(configs, db)
	statsUsecase := statsUC.NewStatsUC(statsRepository, configs)
	statsH := statsHandler.NewHandler(statsHTTP.NewStatsHandler(statsUsecase))

	// Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName)

	jwtMiddleware := middleware.JWTMiddleware(configs.JWT)
	accountsH.RegisterRoutes(e, jwtMiddleware)
	fleetH.RegisterRoutes(e, jwtMiddleware)
	loadsH.RegisterRoutes(e, jwtMiddleware)
	statsH.RegisterRoutes(e, jwtMiddleware)

	// Start server
	address := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	go func() {
		logger.Info("Starting server", logger.String("address", address))
		if err := e.Start(address); err != nil {
			logger.Info("Server stopped", logger.ErrorField(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down server gracefully", logger.ErrorField(err))
	}
	logger.Info("Server shut down")
}
