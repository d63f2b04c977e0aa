package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"credman/internal/app/client/config"
)

// New создает логгер под окружение: локально - цветной текстовый вывод с
// уровнем DEBUG, dev - JSON с DEBUG, prod - JSON с INFO.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	default:
		return setupPrettySlog()
	}
}

func setupPrettySlog() *slog.Logger {
	handler := NewPrettyHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler)
}
