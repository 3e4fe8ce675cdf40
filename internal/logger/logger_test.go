package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Info("login", "email", "alice@example.com", "password", "secret", "refreshToken", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "alice@example.com", entry["email"])
	assert.Equal(t, redacted, entry["password"])
	assert.Equal(t, redacted, entry["refreshToken"])
}

func TestNewPrettyRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "text")

	log.With("Authorization", "Bearer xyz").Debug("guard", "user_id", 3)

	out := buf.String()
	assert.Contains(t, out, "guard")
	assert.Contains(t, out, redacted)
	assert.NotContains(t, out, "Bearer xyz")
	assert.Contains(t, out, "=3")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "text")

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestPrettyHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, nil)).WithGroup("db")

	log.Info("ping", "latency_ms", 4)
	assert.Contains(t, buf.String(), "db.latency_ms")
}
