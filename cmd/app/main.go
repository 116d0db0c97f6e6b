package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"activity-signup-service/internal/catalog"
	"activity-signup-service/internal/config"
	"activity-signup-service/internal/domain"
	"activity-signup-service/internal/handler"
	"activity-signup-service/internal/metrics"
	"activity-signup-service/internal/repository"
	"activity-signup-service/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Config load failed: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	// Каталог занятий
	seed, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatalf("Catalog load failed: %v", err)
	}

	// Хранилище
	activityRepo, err := repository.NewActivityRepository(seed)
	if err != nil {
		logger.Fatalf("Activity directory init failed: %v", err)
	}
	logger.WithField("activities_count", len(seed)).Info("Activity directory seeded")

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	signupMetrics := metrics.NewSignup(registry)

	// Use Cases
	activityUC := usecase.NewActivityUseCase(activityRepo, signupMetrics)
	if err := activityUC.ReportParticipants(context.Background()); err != nil {
		logger.Warnf("Failed to report initial participants: %v", err)
	}

	// Echo + Handlers
	apiHandler := handler.NewAPIHandler(activityUC, logger)
	e := handler.NewRouter(apiHandler, logger, handler.RouterOptions{
		StaticDir: cfg.StaticDir,
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()
	logger.WithField("port", cfg.ServerPort).Info("Server started")

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}

func loadCatalog(cfg config.Config) ([]*domain.Activity, error) {
	if cfg.CatalogFile != "" {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Load()
}
