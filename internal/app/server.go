package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// start запускает HTTP сервер и блокируется до сигнала остановки.
// При остановке сначала перестаем принимать запросы, потом даем
// рекордеру дописать буферизованные клики.
func (a *App) start() error {
	router := newRouter(a.deps.handler, a.deps.authService, a.logger)

	server := &http.Server{
		Addr:    a.config.ServerAddress.String(),
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", zap.String("address", a.config.ServerAddress.String()))
		errChan <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Server failed", zap.Error(err))
			return err
		}
	case sig := <-stop:
		a.logger.Info("Shutting down", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			a.logger.Error("Server shutdown failed", zap.Error(err))
		}
	}

	a.deps.recorder.Close()

	if a.deps.database != nil {
		a.deps.database.Close()
	}

	return nil
}
