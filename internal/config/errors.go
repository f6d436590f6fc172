package config

import "errors"

var (
	ErrRedisAddrMissing     = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB       = errors.New("REDIS_DB must be a valid integer")
	ErrDatabaseURLMissing   = errors.New("DATABASE_URL is required")
	ErrInvalidSweepInterval = errors.New("URGENT_SWEEP_INTERVAL must be a positive duration")
)
