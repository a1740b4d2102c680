package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// maxConfigFileSize bounds config files we are willing to parse.
const maxConfigFileSize = 10 * 1024 * 1024

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	APIConfig        APIConfig        `json:"api_config,omitempty" yaml:"api_config,omitempty"`
	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	EnrichmentConfig EnrichmentConfig `json:"enrichment_config,omitempty" yaml:"enrichment_config,omitempty"`
	BulkConfig       BulkConfig       `json:"bulk_config,omitempty" yaml:"bulk_config,omitempty"`
	ExportConfig     ExportConfig     `json:"export_config,omitempty" yaml:"export_config,omitempty"`
	SessionConfig    SessionConfig    `json:"session_config,omitempty" yaml:"session_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		APIConfig:        NewDefaultAPIConfig(),
		LogConfig:        NewDefaultLogConfig(),
		EnrichmentConfig: NewDefaultEnrichmentConfig(),
		BulkConfig:       NewDefaultBulkConfig(),
		ExportConfig:     NewDefaultExportConfig(),
		SessionConfig:    NewDefaultSessionConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath, supports both JSON and YAML formats.
// YAML is preferred if the file extension is .yaml or .yml.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" && !fileExists(providedPath) {
		return nil, common.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	data, err := loadConfigFileContent(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Loaded config file")
	return cfg, nil
}

// loadConfigFileContent reads the config file, refusing oversized input
func loadConfigFileContent(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, common.NewValidationError("config_file", filePath, "config file too large")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

// ToYAML renders the configuration as a YAML document.
func (c *GlobalConfig) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile stores the configuration at path, creating parent directories.
// Existing files are left untouched unless overwrite is set.
func (c *GlobalConfig) WriteFile(path string, overwrite bool) error {
	if fileExists(path) && !overwrite {
		return common.NewValidationError("config_file", path, "config file already exists")
	}

	data, err := c.ToYAML()
	if err != nil {
		return common.WrapError(err, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return common.WrapErrorf(err, "failed to create directory for %s", path)
	}
	return os.WriteFile(path, data, 0o644)
}
