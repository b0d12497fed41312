package config

import (
	"os"
	"testing"
)

// unsetEnv removes a variable for the rest of the test. Callers must have
// called t.Setenv on the key first so the original value is restored.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
