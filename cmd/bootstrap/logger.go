package bootstrap

import (
	"log/slog"

	"petshop-booking/internal/handler/middleware"
	"petshop-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// LoggerModule is wired explicitly by main and by the e2e harness; it is not
// part of Module so callers can substitute their own logger.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(logger *middleware.Logger) *slog.Logger {
			return logger.GetSlogLogger()
		},
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
