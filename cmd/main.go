package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "fincalc-engine/docs"
	"fincalc-engine/internal/api"
	"fincalc-engine/internal/config"
	"fincalc-engine/internal/domain/loan"
	"fincalc-engine/internal/domain/property"
	"fincalc-engine/internal/event"
	"fincalc-engine/internal/infrastructure/cache"
	"fincalc-engine/internal/infrastructure/logging"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/spf13/viper"
)

// @title FinCalc Engine API
// @version 1.0
// @description Financial calculation engine for the property-investment CRM: amortization schedules, APR solving and property scoring.
// @termsOfService http://fincalc-engine.com/terms/

// @contact.name API Support
// @contact.url http://fincalc-engine.com/support
// @contact.email support@fincalc-engine.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, logger := initializeApp()

	resultCache := initializeCache(cfg, logger)
	defer closeCache(resultCache, logger)

	publisher, amqpConn := initializePublisher(cfg, logger)
	defer closeAMQP(amqpConn, logger)

	calcService, scoringService := initializeServices(resultCache, publisher, logger)

	router := api.SetupRouter(calcService, scoringService, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger)
	slog.SetDefault(logger)
	logger.Info("Application starting...", "config_source", viper.ConfigFileUsed())

	return cfg, logger
}

func initializeCache(cfg *config.Config, logger *slog.Logger) *cache.RedisCache {
	if !cfg.Cache.Enabled {
		logger.Info("Result cache disabled")
		return nil
	}

	logger.Info("Initializing redis result cache...", "addr", cfg.Cache.Addr)
	resultCache := cache.NewRedisCache(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB, cfg.Cache.TTL, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := resultCache.Ping(ctx); err != nil {
		logger.Warn("Redis unreachable, continuing without result cache", "error", err)
		return nil
	}
	return resultCache
}

func closeCache(resultCache *cache.RedisCache, logger *slog.Logger) {
	if resultCache == nil {
		return
	}
	logger.Info("Closing redis client...")
	if err := resultCache.Close(); err != nil {
		logger.Warn("Failed to close redis client", "error", err)
	}
}

func initializePublisher(cfg *config.Config, logger *slog.Logger) (event.Publisher, *amqp.Connection) {
	if !cfg.Events.Enabled {
		logger.Info("Event publishing disabled")
		return nil, nil
	}

	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.Events.Username, cfg.Events.Password, cfg.Events.Host, cfg.Events.Port)
	conn, err := amqp.Dial(url)
	if err != nil {
		logger.Warn("RabbitMQ unreachable, continuing without event publishing", "error", err)
		return nil, nil
	}

	publisher, err := event.NewRabbitMQEventPublisher(conn, cfg.Events.ExchangeName, logger)
	if err != nil {
		logger.Warn("Failed to initialize event publisher, continuing without it", "error", err)
		conn.Close()
		return nil, nil
	}
	return publisher, conn
}

func closeAMQP(conn *amqp.Connection, logger *slog.Logger) {
	if conn == nil {
		return
	}
	logger.Info("Closing RabbitMQ connection...")
	if err := conn.Close(); err != nil {
		logger.Warn("Failed to close RabbitMQ connection", "error", err)
	}
}

func initializeServices(resultCache *cache.RedisCache, publisher event.Publisher, logger *slog.Logger) (loan.CalculationService, property.ScoringService) {
	logger.Info("Initializing application components...")

	var calcCache loan.Cache
	if resultCache != nil {
		calcCache = resultCache
	}

	calcService := loan.NewCalculationService(calcCache, publisher, logger)
	scoringService := property.NewScoringService(publisher, logger)
	return calcService, scoringService
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	var triggerReason string
	select {
	case sig := <-shutdownChan:
		triggerReason = "signal: " + sig.String()
		logger.Info("Shutdown signal received.", "signal", sig.String())
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		triggerReason = "server exited"
		logger.Info("Server goroutine finished before signal.", "error", err)
	}

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server graceful shutdown failed", "error", err)
		} else {
			logger.Info("HTTP server shutdown initiated.")
		}
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	logger.Info("Waiting for server goroutine to confirm exit...")
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
		} else {
			logger.Info("Server goroutine confirmed exit.")
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine confirmation.")
	}

	logger.Info("Application shutdown process complete.")
}
