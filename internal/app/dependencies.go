package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/redirector/internal/clicks"
	"github.com/avc-dev/redirector/internal/config"
	"github.com/avc-dev/redirector/internal/config/db"
	"github.com/avc-dev/redirector/internal/handler"
	"github.com/avc-dev/redirector/internal/migrations"
	"github.com/avc-dev/redirector/internal/registry"
	"github.com/avc-dev/redirector/internal/resolver"
	"github.com/avc-dev/redirector/internal/service"
	"github.com/avc-dev/redirector/internal/store"
	"github.com/avc-dev/redirector/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// dependencies держит собранный граф зависимостей и то, что нужно
// закрывать при остановке
type dependencies struct {
	handler     *handler.Handler
	authService *service.AuthService
	recorder    *clicks.AsyncRecorder
	database    db.Database
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, database, err := initStorage(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := registry.New(storage)

	res, err := initResolver(cfg, repo, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize resolver: %w", err)
	}

	geo := clicks.NewIPAPIClient(cfg.GeoBaseURL, cfg.GeoTimeout, cfg.GeoRatePerSec, cfg.GeoRateBurst)
	recorder := clicks.NewAsyncRecorder(repo, geo, cfg.ClickBufferSize, cfg.ClickWorkerCount, logger)

	linkService := service.NewLinkService(repo, cfg)
	linkUsecase := usecase.NewLinkUsecase(repo, linkService, cfg, logger)

	h := handler.New(res, recorder, linkUsecase, logger)

	return &dependencies{
		handler:     h,
		authService: service.NewAuthService(cfg.JWTSecret),
		recorder:    recorder,
		database:    database,
	}, nil
}

// initStorage создает хранилище реестра на основе конфигурации
func initStorage(cfg *config.Config, logger *zap.Logger) (registry.Store, db.Database, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("Using in-memory registry")
		return store.NewMemoryStore(), nil, nil
	}

	database, err := db.NewConfig(cfg.DatabaseDSN).Connect(context.Background())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.DB(), logger)
	if err := migrator.RunUp(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Using PostgreSQL registry")
	return store.NewDatabaseStore(database), database, nil
}

// initResolver выбирает бэкенд резолвера и, при наличии Redis,
// оборачивает его в кэш
func initResolver(cfg *config.Config, repo *registry.Repository, logger *zap.Logger) (resolver.Resolver, error) {
	var res resolver.Resolver

	switch cfg.ResolverMode {
	case config.ResolverModeRegistry:
		res = resolver.NewRegistryResolver(repo, cfg.ResolverTimeout)
		logger.Info("Using registry resolver")
	case config.ResolverModeHTTP:
		res = resolver.NewHTTPResolver(cfg.LookupUpstream, cfg.ResolverTimeout, logger)
		logger.Info("Using HTTP resolver", zap.String("upstream", cfg.LookupUpstream))
	default:
		return nil, fmt.Errorf("unknown resolver mode: %s", cfg.ResolverMode)
	}

	if cfg.RedisAddr != "" {
		cache := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		res = resolver.NewCachedResolver(res, cache, cfg.RedisCacheTTL, logger)
		logger.Info("Resolver cache enabled", zap.String("redis_addr", cfg.RedisAddr))
	}

	return res, nil
}
