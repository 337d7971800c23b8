package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MegandM/web-scrape/internal/observability"
)

// GracefulShutdown отменяет context по SIGINT/SIGTERM, чтобы браузер
// успел закрыться через WithSession
func GracefulShutdown(parent context.Context, logger *observability.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	// Канал для сигналов ОС
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
