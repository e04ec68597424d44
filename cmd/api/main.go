package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bookshop-service/internal/api/http"
	"github.com/spec-kit/bookshop-service/internal/api/http/handlers"
	"github.com/spec-kit/bookshop-service/internal/auth"
	"github.com/spec-kit/bookshop-service/internal/config"
	"github.com/spec-kit/bookshop-service/internal/events"
	"github.com/spec-kit/bookshop-service/internal/observability"
	"github.com/spec-kit/bookshop-service/internal/persistence"
	"github.com/spec-kit/bookshop-service/internal/repository"
	"github.com/spec-kit/bookshop-service/internal/service"
	"github.com/spec-kit/bookshop-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	seed, err := repository.LoadCatalog(cfg.Catalog.SeedPath)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("books", len(seed)))

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	userRepo := repository.NewUserRepository()
	bookRepo := repository.NewBookRepository(seed)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(dispatcher, redis, cfg.Redis, logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	catalogService := service.NewCatalogService(bookRepo)
	reviewService := service.NewReviewService(bookRepo, dispatcher, logger)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), logger)
	metrics := observability.NewMetrics()

	var pinger handlers.Pinger
	if redis != nil {
		pinger = redis
	}

	app := httptransport.NewServer(httptransport.ServerConfig{
		AppName:        cfg.App.Name,
		RequestTimeout: cfg.App.RequestTimeout(),
		Logger:         logger,
		Metrics:        metrics,
	}, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pinger, metrics, logger),
		Users:          handlers.NewUsersHandler(authService),
		Books:          handlers.NewBooksHandler(catalogService),
		Reviews:        handlers.NewReviewsHandler(reviewService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
