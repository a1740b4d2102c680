package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIConfig.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.EnrichmentConfig.DebounceDelay)
	assert.Equal(t, 100, cfg.BulkConfig.MaxBatchSize)
	assert.Equal(t, "zstd", cfg.ExportConfig.ParquetCompression)
	assert.NotEmpty(t, cfg.SessionConfig.Path)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json", zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := `
api_config:
  base_url: https://phish.example.com/
  timeout: 5s
log_config:
  log_level: debug
enrichment_config:
  debounce_delay: 250ms
bulk_config:
  max_batch_size: 50
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0o644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "https://phish.example.com/", cfg.APIConfig.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.APIConfig.Timeout)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.EnrichmentConfig.DebounceDelay)
	assert.Equal(t, 50, cfg.BulkConfig.MaxBatchSize)
	// untouched sections keep defaults
	assert.Equal(t, DefaultExportTimeLayout, cfg.ExportConfig.TimeLayout)
	assert.Equal(t, "https://phish.example.com/api/predict", cfg.APIConfig.Endpoint("/api/predict"))
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	configData := `{"log_config": {"log_format": "json"}, "export_config": {"output_dir": "out"}}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0o644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
	assert.Equal(t, "out", cfg.ExportConfig.OutputDir)
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("api_config: [oops"), 0o644))

	_, err := LoadGlobalConfig(configFile, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config content")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GlobalConfig)
		wantErr string
	}{
		{name: "bad log level", mutate: func(c *GlobalConfig) { c.LogConfig.LogLevel = "loud" }, wantErr: "loglevel"},
		{name: "bad log format", mutate: func(c *GlobalConfig) { c.LogConfig.LogFormat = "xml" }, wantErr: "logformat"},
		{name: "bad base url", mutate: func(c *GlobalConfig) { c.APIConfig.BaseURL = "ftp://x" }, wantErr: "httpurl"},
		{name: "missing base url", mutate: func(c *GlobalConfig) { c.APIConfig.BaseURL = "" }, wantErr: "required"},
		{name: "batch too large", mutate: func(c *GlobalConfig) { c.BulkConfig.MaxBatchSize = 500 }, wantErr: "max"},
		{name: "unknown compression", mutate: func(c *GlobalConfig) { c.ExportConfig.ParquetCompression = "lzma" }, wantErr: "compression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Error(t, ValidateConfig(nil))
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := NewDefaultGlobalConfig()
	cfg.APIConfig.BaseURL = "https://api.example.org"

	require.NoError(t, cfg.WriteFile(path, false))
	assert.Error(t, cfg.WriteFile(path, false))

	loaded, err := LoadGlobalConfig(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", loaded.APIConfig.BaseURL)
	assert.Equal(t, cfg.EnrichmentConfig.DebounceDelay, loaded.EnrichmentConfig.DebounceDelay)
}

func TestApplyOverrides(t *testing.T) {
	t.Setenv("PHISHSCAN_API_BASE_URL", "https://env.example.com/")
	t.Setenv("PHISHSCAN_BULK_MAX_BATCH_SIZE", "25")

	v := NewViper()
	v.Set(KeyLogLevel, "warn")
	v.Set(KeyEnrichmentDebounce, "1s")

	cfg := NewDefaultGlobalConfig()
	ApplyOverrides(v, cfg)

	assert.Equal(t, "https://env.example.com", cfg.APIConfig.BaseURL)
	assert.Equal(t, 25, cfg.BulkConfig.MaxBatchSize)
	assert.Equal(t, "warn", cfg.LogConfig.LogLevel)
	assert.Equal(t, time.Second, cfg.EnrichmentConfig.DebounceDelay)
	assert.Equal(t, DefaultLogFormat, cfg.LogConfig.LogFormat)
}
