package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is bumped whenever a required variable is added
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be non-empty for the API to start
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"ADMIN_AUTH_TOKEN",
	"STRIPE_SECRET_KEY",
	"STRIPE_WEBHOOK_SECRET",
	"LINE_CHANNEL_SECRET",
	"LINE_CHANNEL_ACCESS_TOKEN",
}

// DBEnvVars are required unless DATABASE_URL is set
var DBEnvVars = []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"}

// envWarning flags a variable that is set but looks unsafe for real traffic
type envWarning struct {
	key     string
	matches func(string) bool
	message string
}

var envWarnings = []envWarning{
	{"DB_PASSWORD", equals("change_this_secure_password"), "DB_PASSWORD appears to be using the example value - please use a secure password"},
	{"ADMIN_AUTH_TOKEN", func(v string) bool { return v == "admin" || len(v) < 16 }, "ADMIN_AUTH_TOKEN is short or the example value - generate one with: openssl rand -hex 32"},
	{"STRIPE_SECRET_KEY", func(v string) bool { return strings.HasPrefix(v, "sk_test_") }, "STRIPE_SECRET_KEY is a test mode key - payments will not be charged"},
	{"ADMIN_ACCESS_KEYWORD", equals(""), "ADMIN_ACCESS_KEYWORD is not set - the LINE bot will not reply with the admin URL"},
	{"GACHA_RANDOM_SEED", func(v string) bool { return v != "" && v != "0" }, "GACHA_RANDOM_SEED is set - draws are reproducible and must not be used in production"},
}

func equals(want string) func(string) bool {
	return func(v string) bool { return v == want }
}

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v)
	}

	required := RequiredEnvVars
	if os.Getenv("DATABASE_URL") == "" {
		required = append(append([]string{}, required...), DBEnvVars...)
	}

	var missing []string
	for _, key := range required {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports risky but
// non-fatal values, in a stable order.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.matches(os.Getenv(w.key)) {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
