package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"watchwise/config"
	"watchwise/internal/errors"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger.
// Logs go to stderr so stdout only carries fixture progress output.
func New(params Params) (*slog.Logger, error) {
	return newLogger(params.Config, os.Stderr)
}

// NewFxLogger routes fx container events through the application logger.
func NewFxLogger(logger *slog.Logger) fxevent.Logger {
	fxLogger := &fxevent.SlogLogger{Logger: logger}
	// Container wiring is noise for a one-shot command; failures still log at error.
	fxLogger.UseLogLevel(slog.LevelDebug)

	return fxLogger
}

func newLogger(cfg *config.Config, out io.Writer) (*slog.Logger, error) {
	// Parse log level from config
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	// Initialize slog logger with JSON format and specified log level
	var logger *slog.Logger
	if cfg.Env.Log.Pretty {
		logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	} else {
		logger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}

	if cfg.Env.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.Env.ServiceName))
	}

	return logger, nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
