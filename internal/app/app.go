package app

import (
	"github.com/avc-dev/redirector/internal/config"
	"go.uber.org/zap"
)

// App представляет сервис резолвинга и редиректов
type App struct {
	config *config.Config
	logger *zap.Logger
	deps   *dependencies
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		deps:   deps,
	}, nil
}

// Run запускает приложение
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	return app.start()
}
