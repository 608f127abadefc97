package bootstrap

import (
	"log/slog"
	"os"

	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the process logger from config and installs it as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)
	return logger
}
