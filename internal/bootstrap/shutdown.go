package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GachaLab_Go/internal/database"
)

// Stopper is anything that can be stopped with a deadline
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server Stopper
	DB     database.Pool
}

// GracefulShutdown stops the HTTP server first so in-flight draws can finish,
// then closes the database pool. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
