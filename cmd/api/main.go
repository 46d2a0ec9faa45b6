package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/urbango/ride-booking/internal/api/handlers"
	"github.com/urbango/ride-booking/internal/api/routes"
	"github.com/urbango/ride-booking/internal/client"
	"github.com/urbango/ride-booking/internal/config"
	"github.com/urbango/ride-booking/internal/repository/postgres"
	"github.com/urbango/ride-booking/internal/service/booking"
	"github.com/urbango/ride-booking/internal/service/payments"
	"github.com/urbango/ride-booking/internal/service/pricing"
	"github.com/urbango/ride-booking/internal/service/selection"
	"github.com/urbango/ride-booking/pkg/cache"
	"github.com/urbango/ride-booking/pkg/database"
	"github.com/urbango/ride-booking/pkg/logger"
	"github.com/urbango/ride-booking/pkg/monitoring"
)

// sysRand adapts the process-wide math/rand source, which is safe for
// concurrent use, to the randomness interfaces the services expect.
type sysRand struct{}

func (sysRand) Intn(n int) int   { return rand.Intn(n) }
func (sysRand) Float64() float64 { return rand.Float64() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting ride-booking service",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port),
	)

	nrApp, err := monitoring.New(monitoring.Config{
		LicenseKey: cfg.NewRelic.LicenseKey,
		AppName:    cfg.NewRelic.AppName,
		Enabled:    cfg.NewRelic.Enabled,
	})
	if err != nil {
		appLogger.Warn("Failed to initialize New Relic", logger.Err(err))
		nrApp, _ = monitoring.New(monitoring.Config{})
	}
	defer nrApp.Shutdown(10 * time.Second)

	redisClient, err := cache.NewRedisClient(cache.Config{
		Host:        cfg.Redis.Host,
		Port:        cfg.Redis.Port,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: cfg.Redis.DialTimeout,
		ReadTimeout: cfg.Redis.ReadTimeout,
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer cache.Close(redisClient)

	db, err := database.NewPostgresDB(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		MaxConns: cfg.Database.MaxConns,
		MaxIdle:  cfg.Database.MaxIdle,
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer db.Close()

	appLogger.Info("Connected to PostgreSQL and Redis")

	rideRepo := postgres.NewRideRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)

	var identityClient client.IdentityClient
	var driverClient client.DriverClient
	if cfg.Clients.Simulated {
		appLogger.Info("Using simulated identity and driver services")
		identityClient = client.NewSimulatedIdentityService()
		driverClient = client.NewSimulatedDriverDirectory(client.DefaultSimulatedDrivers())
	} else {
		identityClient = client.NewHTTPIdentityClient(cfg.Clients.IdentityBaseURL, cfg.Clients.Timeout, appLogger)
		driverClient = client.NewHTTPDriverClient(cfg.Clients.DriverBaseURL, cfg.Clients.Timeout, appLogger)
	}

	rates, err := pricing.RatesFromConfig(cfg.Pricing)
	if err != nil {
		appLogger.Fatal("Invalid pricing configuration", logger.Err(err))
	}

	rnd := sysRand{}
	estimator := pricing.NewSimulatedDistanceEstimator(rnd)
	pricer := pricing.NewEngine(rates, estimator, rnd)
	picker := selection.NewSelector(rnd)

	orchestrator := booking.NewOrchestrator(rideRepo, identityClient, driverClient, pricer, picker, appLogger)

	gateway := payments.NewSimulatedGateway(cfg.Gateway.SuccessRate, cfg.Gateway.Delay, rnd)
	processor := payments.NewProcessor(paymentRepo, gateway, appLogger)

	h := handlers.NewHandlers(orchestrator, processor, redisClient, appLogger, nrApp)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	var nrApplication *newrelic.Application
	if nrApp.IsEnabled() {
		nrApplication = nrApp.Application
	}
	routes.SetupRoutes(router, h, nrApplication)

	srv := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		appLogger.Info("Server starting", logger.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	appLogger.Info("Server stopped gracefully")
}
