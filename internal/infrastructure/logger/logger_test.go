package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-svc"}, &buf)

	log.Info().Str("key", "value").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test-svc", entry["service"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "info", entry["level"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn", Format: "json", ServiceName: "test-svc"}, &buf)

	log.Info().Msg("suppressed")
	assert.Empty(t, buf.Bytes())

	log.Warn().Msg("emitted")
	assert.NotEmpty(t, buf.Bytes())
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "loud", Format: "json", ServiceName: "test-svc"}, &buf)

	log.Debug().Msg("suppressed")
	assert.Empty(t, buf.Bytes())

	log.Info().Msg("emitted")
	assert.NotEmpty(t, buf.Bytes())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-svc"}, &buf)

	log.WithComponent("skyscanner").Info().Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "skyscanner", entry["component"])
}

func TestNopProducesNoOutput(t *testing.T) {
	log := Nop()
	log.Error().Msg("nothing")
	// No assertion possible beyond not panicking; Nop is a disabled logger.
}
