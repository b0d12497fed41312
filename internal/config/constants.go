package config

import "time"

const (
	// Configuration file paths
	ConfigPathSeed       = "configs/seed.yaml"
	ConfigPathSeedSchema = "configs/schemas/seed.schema.json"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultVersion         = "dev"
	DefaultTimeZone        = "Asia/Tokyo"
	DefaultDBMaxConns      = 20
	DefaultDBMaxIdleTime   = 5 * time.Minute
	DefaultDBMaxLifetime   = 30 * time.Minute
	DefaultShutdownTimeout = 30 * time.Second
)

// Error messages
const (
	ErrMsgInvalidPort        = "invalid PORT value"
	ErrMsgAdminTokenRequired = "ADMIN_AUTH_TOKEN environment variable must be set for security"
	ErrMsgInvalidTimeZone    = "invalid TIME_ZONE value"
)
