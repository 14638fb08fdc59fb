package bootstrap

import (
	"log/slog"
	"os"

	"hotel-pms/internal/handler/middleware"
	"hotel-pms/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)
	return logger
}
