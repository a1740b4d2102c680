package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Override keys understood by ApplyOverrides. Environment variables use the
// PHISHSCAN_ prefix with dots replaced by underscores (PHISHSCAN_API_BASE_URL).
const (
	KeyAPIBaseURL         = "api.base_url"
	KeyAPITimeout         = "api.timeout"
	KeyAPIInsecure        = "api.insecure_skip_verify"
	KeyAPIMaxRetries      = "api.max_retries"
	KeyAPIRateLimit       = "api.rate_limit"
	KeyLogLevel           = "log.level"
	KeyLogFormat          = "log.format"
	KeyLogFile            = "log.file"
	KeyEnrichmentDebounce = "enrichment.debounce_delay"
	KeyEnrichmentCacheTTL = "enrichment.cache_ttl"
	KeyBulkMaxBatchSize   = "bulk.max_batch_size"
	KeyExportOutputDir    = "export.output_dir"
	KeySessionPath        = "session.path"
)

// NewViper returns a viper instance wired for PHISHSCAN_* environment overrides.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ApplyOverrides copies every key set in v (bound flag or environment) onto cfg.
func ApplyOverrides(v *viper.Viper, cfg *GlobalConfig) {
	if v == nil || cfg == nil {
		return
	}

	setString := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	setString(KeyAPIBaseURL, &cfg.APIConfig.BaseURL)
	setString(KeyLogLevel, &cfg.LogConfig.LogLevel)
	setString(KeyLogFormat, &cfg.LogConfig.LogFormat)
	setString(KeyLogFile, &cfg.LogConfig.LogFile)
	setString(KeyExportOutputDir, &cfg.ExportConfig.OutputDir)
	setString(KeySessionPath, &cfg.SessionConfig.Path)

	if v.IsSet(KeyAPITimeout) {
		cfg.APIConfig.Timeout = v.GetDuration(KeyAPITimeout)
	}
	if v.IsSet(KeyAPIInsecure) {
		cfg.APIConfig.InsecureSkipVerify = v.GetBool(KeyAPIInsecure)
	}
	if v.IsSet(KeyAPIMaxRetries) {
		cfg.APIConfig.MaxRetries = v.GetInt(KeyAPIMaxRetries)
	}
	if v.IsSet(KeyAPIRateLimit) {
		cfg.APIConfig.RateLimit = v.GetFloat64(KeyAPIRateLimit)
	}
	if v.IsSet(KeyEnrichmentDebounce) {
		cfg.EnrichmentConfig.DebounceDelay = v.GetDuration(KeyEnrichmentDebounce)
	}
	if v.IsSet(KeyEnrichmentCacheTTL) {
		cfg.EnrichmentConfig.CacheTTL = v.GetDuration(KeyEnrichmentCacheTTL)
	}
	if v.IsSet(KeyBulkMaxBatchSize) {
		cfg.BulkConfig.MaxBatchSize = v.GetInt(KeyBulkMaxBatchSize)
	}

	cfg.APIConfig.BaseURL = strings.TrimRight(cfg.APIConfig.BaseURL, "/")
}
