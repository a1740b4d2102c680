package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/phishscan/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	_, err := New(config.NewDefaultLogConfig())
	require.NoError(t, err)
}

func TestBuild_JSONConsoleCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewDefaultLogConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"

	log, err := NewLoggerBuilder().WithConsole(&buf).WithConfig(cfg).WithRunID("run-42").Build()
	require.NoError(t, err)

	log.Debug().Str("url", "https://example.com").Msg("scanning")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "run-42", entry["run_id"])
	assert.Equal(t, "scanning", entry["message"])
	assert.Equal(t, "debug", entry["level"])
}

func TestBuild_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewDefaultLogConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	log, err := NewLoggerBuilder().WithConfig(cfg).WithConsole(&buf).Build()
	require.NoError(t, err)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestBuild_FileWriterUsesRunSubdir(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = filepath.Join(dir, "phishscan.log")
	cfg.LogFormat = "json"

	log, err := NewLoggerBuilder().WithConsole(&bytes.Buffer{}).WithConfig(cfg).WithRunID("abc").Build()
	require.NoError(t, err)
	log.Info().Msg("to file")

	data, err := os.ReadFile(filepath.Join(dir, "runs", "abc", "phishscan.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel("chatty")
	assert.Error(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatConsole, ParseFormat("whatever"))
	assert.Equal(t, "json", FormatJSON.String())
}
