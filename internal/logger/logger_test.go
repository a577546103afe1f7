package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_JSONLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", "json", &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("item", "desk").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"item":"desk"`)
	assert.Contains(t, out, `"message":"shown"`)
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	log := New("loud", "json", &bytes.Buffer{})

	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "console", &buf)

	log.Info().Msg("connected")

	assert.Contains(t, buf.String(), "connected")
	assert.NotContains(t, buf.String(), `"message"`)
}
