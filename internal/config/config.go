package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	// LogDir receives a session log file next to stdout when set
	LogDir string

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	// Database
	DatabaseURL   string // takes precedence over the DB_* parts when set
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	DBMaxIdleTime time.Duration
	DBMaxLifetime time.Duration

	// AdminAuthToken guards the /admin API via the X-Admin-Auth header
	AdminAuthToken string

	// Payments
	StripeSecretKey     string
	StripeWebhookSecret string

	// LINE
	LineChannelSecret string
	LineChannelToken  string
	AdminKeyword      string
	AdminURL          string
	BaseURL           string

	// TimeZone defines day and month boundaries for statistics
	TimeZone *time.Location

	// RandomSeed makes draws reproducible when non-zero. Never set in production.
	RandomSeed uint64

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),
		LogDir:      getEnv("LOG_DIR", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "gachalab"),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxIdleTime),
		DBMaxLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxLifetime),

		AdminAuthToken: getEnv("ADMIN_AUTH_TOKEN", ""),

		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),

		LineChannelSecret: getEnv("LINE_CHANNEL_SECRET", ""),
		LineChannelToken:  getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),
		AdminKeyword:      getEnv("ADMIN_ACCESS_KEYWORD", ""),
		AdminURL:          getEnv("ADMIN_URL", ""),
		BaseURL:           getEnv("BASE_URL", ""),

		RandomSeed:      uint64(max(getEnvAsInt("GACHA_RANDOM_SEED", 0), 0)),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	tz := getEnv("TIME_ZONE", DefaultTimeZone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidTimeZone, err)
	}
	cfg.TimeZone = loc

	if cfg.AdminAuthToken == "" {
		return nil, fmt.Errorf("%s", ErrMsgAdminTokenRequired)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a Go duration such as "30s", falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// IsProduction reports whether the app runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}
