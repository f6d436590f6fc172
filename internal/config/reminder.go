package config

import (
	"os"
	"time"
)

const (
	sweepIntervalEnv = "URGENT_SWEEP_INTERVAL"

	defaultSweepInterval = time.Hour
)

func LoadReminderConfig() (*ReminderConfig, error) {
	interval := defaultSweepInterval
	if raw := os.Getenv(sweepIntervalEnv); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidSweepInterval
		}
		interval = parsed
	}

	return &ReminderConfig{
		SweepInterval: interval,
	}, nil
}
