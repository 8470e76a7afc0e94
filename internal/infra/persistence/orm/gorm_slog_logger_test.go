package orm

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"watchwise/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedSlogLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlAndRows() (string, int64) {
	return `INSERT INTO "users" ...`, 10
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(newBufferedSlogLogger(&buf), SlogLoggerOptions{Driver: "sqlite"})

	l.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("UNIQUE constraint failed: users.email"))

	assert.Contains(t, buf.String(), "Database statement failed")
	assert.Contains(t, buf.String(), "UNIQUE constraint failed")
	assert.Contains(t, buf.String(), "rows=10")
	assert.Contains(t, buf.String(), "driver=sqlite")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(newBufferedSlogLogger(&buf), SlogLoggerOptions{})

	l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold time.Duration
		elapsed   time.Duration
		wantSlow  bool
	}{
		{name: "default threshold exceeded", threshold: 0, elapsed: time.Second, wantSlow: true},
		{name: "default threshold not reached", threshold: 0, elapsed: 0, wantSlow: false},
		{name: "custom threshold exceeded", threshold: 50 * time.Millisecond, elapsed: 100 * time.Millisecond, wantSlow: true},
		{name: "custom threshold not reached", threshold: 5 * time.Second, elapsed: time.Second, wantSlow: false},
		{name: "disabled", threshold: -1, elapsed: time.Hour, wantSlow: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewSlogLogger(newBufferedSlogLogger(&buf), SlogLoggerOptions{Driver: "postgres", SlowThreshold: tt.threshold})

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlAndRows, nil)

			if tt.wantSlow {
				assert.Contains(t, buf.String(), "Database statement slow")
				assert.Contains(t, buf.String(), "driver=postgres")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestGormSlogLogger_DebugLogsEveryStatement(t *testing.T) {
	var quiet, verbose bytes.Buffer

	NewSlogLogger(newBufferedSlogLogger(&quiet), SlogLoggerOptions{}).Trace(context.Background(), time.Now(), sqlAndRows, nil)
	NewSlogLogger(newBufferedSlogLogger(&verbose), SlogLoggerOptions{Debug: true}).Trace(context.Background(), time.Now(), sqlAndRows, nil)

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "Database statement")
}

func TestGormSlogLogger_LogModeSilent(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(newBufferedSlogLogger(&buf), SlogLoggerOptions{Debug: true}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
	l.Info(context.Background(), "hello %s", "world")

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_Messages(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(newBufferedSlogLogger(&buf), SlogLoggerOptions{Driver: "sqlite"})

	l.Info(context.Background(), "skipped %d", 1)
	l.Warn(context.Background(), "table %s has no primary key", "users")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "table users has no primary key")
	assert.Contains(t, buf.String(), "level=WARN")
}
