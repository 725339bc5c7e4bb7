package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/petvalues/pkg/logging"
)

func TestDefaultLoggerCapture(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)

	logging.Info().Str("source", "zack").Msg("source fetched")
	logging.Debug().Msg("debug detail")

	tl.AssertContains(t, "source fetched")
	tl.AssertContains(t, `"source":"zack"`)
	assert.Len(t, tl.Lines(), 2)
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithSource(ctx, "moonvalues")
	ctx = logging.WithOperation(ctx, "fetch")

	logging.FromContext(ctx).Warn().Msg("source failed")

	tl.AssertContains(t, `"source":"moonvalues"`)
	tl.AssertContains(t, `"operation":"fetch"`)
	tl.AssertContains(t, "source failed")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warning alias", level: "warning", want: zerolog.WarnLevel},
		{name: "off", level: "off", want: zerolog.Disabled},
		{name: "invalid falls back", level: "loud", want: zerolog.InfoLevel},
		{name: "empty falls back", level: "", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewLoggerFromConfig(&logging.Config{
				Level:  tt.level,
				Format: "json",
				Output: "discard",
			})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLoggerFromConfigFileOutput(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	path := filepath.Join(t.TempDir(), "import.log")
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "info",
		Format: "json",
		Output: path,
	})
	logger.Info().Msg("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
