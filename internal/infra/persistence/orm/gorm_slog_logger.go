package orm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"watchwise/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSlowThreshold applies when database.slowThreshold is unset.
const DefaultSlowThreshold = 200 * time.Millisecond

// SlogLoggerOptions configures the GORM to slog bridge.
type SlogLoggerOptions struct {
	// Driver labels every record, e.g. "postgres" or "sqlite".
	Driver string
	// Debug logs every statement instead of only slow and failed ones.
	Debug bool
	// SlowThreshold marks statements as slow; negative disables the check.
	SlowThreshold time.Duration
}

type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// NewSlogLogger bridges GORM's logger onto slog.
func NewSlogLogger(baseLogger *slog.Logger, opts SlogLoggerOptions) logger.Interface {
	level := logger.Warn
	if opts.Debug {
		level = logger.Info
	}

	threshold := opts.SlowThreshold
	if threshold == 0 {
		threshold = DefaultSlowThreshold
	}

	if baseLogger != nil && opts.Driver != "" {
		baseLogger = baseLogger.With(slog.String("driver", opts.Driver))
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: threshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < enabledAt {
		return
	}

	l.logger.LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements as errors, slow ones as warnings and,
// in debug mode, everything else at info.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case failed && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "Database statement failed", slog.String("error", err.Error())
	case slow && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "Database statement slow", slog.Duration("slowThreshold", l.slowThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "Database statement"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
