package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"library/cmd"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "0 0 * * * *", config.OverdueReportSchedule)
	assert.Equal(t, "0 */15 * * * *", config.StatusReportSchedule)
	assert.False(t, config.SeedDemoData)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEED_DEMO_DATA", "true")

	config, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.True(t, config.SeedDemoData)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("LOG_LEVEL=debug\nOVERDUE_REPORT_SCHEDULE=\"*/30 * * * * *\"\n"), 0o600))
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	t.Setenv("OVERDUE_REPORT_SCHEDULE", "")
	require.NoError(t, os.Unsetenv("OVERDUE_REPORT_SCHEDULE"))

	config, err := cmd.LoadConfig(file)

	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "*/30 * * * * *", config.OverdueReportSchedule)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("SEED_DEMO_DATA", "sometimes")

	_, err := cmd.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestConfig_Levels(t *testing.T) {
	tests := []struct {
		logLevel string
		slog     slog.Level
		echo     log.Lvl
	}{
		{logLevel: "debug", slog: slog.LevelDebug, echo: log.DEBUG},
		{logLevel: "info", slog: slog.LevelInfo, echo: log.INFO},
		{logLevel: "WARN", slog: slog.LevelWarn, echo: log.WARN},
		{logLevel: "error", slog: slog.LevelError, echo: log.ERROR},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			config := cmd.Config{LogLevel: tt.logLevel}

			level, err := config.SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.slog, level)
			assert.Equal(t, tt.echo, config.EchoLogLevel())
		})
	}

	_, err := cmd.Config{LogLevel: "loud"}.SlogLevel()
	require.Error(t, err)
}
