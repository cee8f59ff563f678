package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	l := Init(Config{Level: "info", Format: "console", Output: &buf})

	l.Debug("hidden")
	l.With("preset", "outline").WithGroup("head").Info("parked", "tick", 118)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO  parked")
	assert.Contains(t, out, "preset=outline")
	assert.Contains(t, out, "head.tick=118")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := Init(Config{Level: "debug", Format: "json", Output: &buf})
	l.Debug("tick", "n", 3)
	assert.Contains(t, buf.String(), `"msg":"tick"`)
	assert.Same(t, l, L())
}
