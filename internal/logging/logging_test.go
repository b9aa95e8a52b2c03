package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json output carries fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, Options{Level: "info", Format: "json"})
		require.NoError(t, err)

		logger.Info("created", "id", "abc")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "created", entry["msg"])
		assert.Equal(t, "abc", entry["id"])
	})

	t.Run("level filters lower messages", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, Options{Level: "warn", Format: "text"})
		require.NoError(t, err)

		logger.Info("hidden")
		assert.Empty(t, buf.String())

		logger.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("level is case insensitive", func(t *testing.T) {
		logger, err := New(&bytes.Buffer{}, Options{Level: "DEBUG"})
		require.NoError(t, err)
		assert.Equal(t, log.DebugLevel, logger.GetLevel())
	})

	t.Run("empty level defaults to info", func(t *testing.T) {
		logger, err := New(&bytes.Buffer{}, Options{})
		require.NoError(t, err)
		assert.Equal(t, log.InfoLevel, logger.GetLevel())
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, Options{Format: "xml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log format")
	})

	t.Run("prefix is written", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, Options{Format: "logfmt", Prefix: "todo"})
		require.NoError(t, err)

		logger.Info("hello")
		assert.Contains(t, buf.String(), "todo")
		assert.Contains(t, buf.String(), "hello")
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want log.Formatter
	}{
		{"", log.TextFormatter},
		{"text", log.TextFormatter},
		{"JSON", log.JSONFormatter},
		{"logfmt", log.LogfmtFormatter},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing happens")
}
