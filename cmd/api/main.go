package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/assetflow/maintenance-service/internal/api/http"
	"github.com/assetflow/maintenance-service/internal/api/http/handlers"
	"github.com/assetflow/maintenance-service/internal/config"
	"github.com/assetflow/maintenance-service/internal/events"
	"github.com/assetflow/maintenance-service/internal/notify"
	"github.com/assetflow/maintenance-service/internal/observability"
	"github.com/assetflow/maintenance-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	dispatcher := events.NewInMemoryDispatcher()
	st := store.New(logger, dispatcher)

	notifier := notify.NewNotifier(dispatcher, logger, cfg.Notification)
	notifier.RegisterHandlers()

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, st),
		Requests:  handlers.NewRequestsHandler(st),
		Dashboard: handlers.NewDashboardHandler(st),
		Catalog:   handlers.NewCatalogHandler(st),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
