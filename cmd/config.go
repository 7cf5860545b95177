package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type Config struct {
	HTTPPort              string `env:"HTTP_PORT"               envDefault:"8080"`
	LogLevel              string `env:"LOG_LEVEL"               envDefault:"info"`
	OverdueReportSchedule string `env:"OVERDUE_REPORT_SCHEDULE" envDefault:"0 0 * * * *"`
	StatusReportSchedule  string `env:"STATUS_REPORT_SCHEDULE"  envDefault:"0 */15 * * * *"`
	SeedDemoData          bool   `env:"SEED_DEMO_DATA"          envDefault:"false"`
}

// LoadConfig reads the given .env files, when they exist, into the process
// environment and then parses Config from it. Variables already set in the
// environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return config, nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	return level, nil
}

// EchoLogLevel maps LogLevel onto the gommon levels used by echo's logger.
func (c Config) EchoLogLevel() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
