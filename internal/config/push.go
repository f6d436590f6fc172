package config

import (
	"os"
	"strconv"
)

const (
	pushRelayURLEnv   = "PUSH_RELAY_URL"
	pushAPIKeyEnv     = "PUSH_RELAY_API_KEY"
	pushMaxRetriesEnv = "PUSH_MAX_RETRIES"

	defaultPushMaxRetries = 3
)

type PushConfig struct {
	// RelayURL empty means push delivery is disabled (noop gateway).
	RelayURL   string
	APIKey     string
	MaxRetries int
}

func LoadPushConfig() PushConfig {
	maxRetries := defaultPushMaxRetries
	if v := os.Getenv(pushMaxRetriesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	return PushConfig{
		RelayURL:   os.Getenv(pushRelayURLEnv),
		APIKey:     os.Getenv(pushAPIKeyEnv),
		MaxRetries: maxRetries,
	}
}
