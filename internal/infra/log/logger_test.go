package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"watchwise/config"
	"watchwise/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxevent"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONWithServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "watchwise-seed"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("fixtures loaded", slog.Int("count", 1))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fixtures loaded", entry["msg"])
	assert.Equal(t, "watchwise-seed", entry["service"])
	assert.EqualValues(t, 1, entry["count"])
}

func TestNewLogger_PrettyText(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true
	cfg.Env.Log.Level = "debug"

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("purging users")
	assert.Contains(t, buf.String(), "msg=\"purging users\"")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := newLogger(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewFxLogger_QuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	fxLogger := NewFxLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	fxLogger.LogEvent(&fxevent.Provided{
		ConstructorName: "watchwise/config.New()",
		OutputTypeNames: []string{"*config.Config"},
	})
	assert.Empty(t, buf.String())

	fxLogger.LogEvent(&fxevent.Invoked{
		FunctionName: "watchwise/internal/usecase/impl.NewFixtureService()",
		Err:          errors.New("boom"),
	})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "boom")
}
