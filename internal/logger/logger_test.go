package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestInitLoggerWithWriter_JSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	cfg := NewConfig("info", "JSON", "", "1.2.0", "prod", false)
	log := InitLoggerWithWriter(cfg, &buf)
	log.Info("draw completed", "tier", "1等", "points", 100)

	entry := decodeLine(t, &buf)
	assert.Equal(t, DefaultServiceName, entry[AttrKeyService])
	assert.Equal(t, "1.2.0", entry[AttrKeyVersion])
	assert.Equal(t, "prod", entry[AttrKeyEnvironment])
	assert.Equal(t, "draw completed", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "1等", entry["tier"])
	assert.Equal(t, float64(100), entry["points"])
}

func TestInitLoggerWithWriter_OmitsEmptyBaseAttrs(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Format: LogFormatJSON}, &buf).Info("x")

	entry := decodeLine(t, &buf)
	assert.NotContains(t, entry, AttrKeyService)
	assert.NotContains(t, entry, AttrKeyVersion)
}

func TestFromContext_TagsRequestAndUser(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, "U4af4980629")
	FromContext(ctx).Debug("traced")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-1", entry[AttrKeyRequestID])
	assert.Equal(t, "U4af4980629", entry[AttrKeyUserID])

	buf.Reset()
	FromContext(context.Background()).Info("plain")
	entry = decodeLine(t, &buf)
	assert.NotContains(t, entry, AttrKeyRequestID)
	assert.NotContains(t, entry, AttrKeyUserID)
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestConfig_LogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, Config{Level: in}.LogLevel(), in)
	}
}

func TestLevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	log := InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, "shown")
}
