package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port     string
	LogLevel slog.Level
	Push     PushConfig
	Redis    *RedisConfig
	Database *DatabaseConfig
	Reminder *ReminderConfig
}

type ReminderConfig struct {
	SweepInterval time.Duration
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	databaseConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	reminderConfig, err := LoadReminderConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:     port,
		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
		Push:     LoadPushConfig(),
		Redis:    redisConfig,
		Database: databaseConfig,
		Reminder: reminderConfig,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
