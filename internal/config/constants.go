package config

import "time"

const (
	// API Defaults
	DefaultAPIBaseURL        = "http://localhost:5000"
	DefaultAPITimeout        = 30 * time.Second
	DefaultAPIMaxRetries     = 2
	DefaultAPIRetryBaseDelay = 500 * time.Millisecond
	DefaultAPIRetryMaxDelay  = 5 * time.Second
	DefaultAPIRateLimit      = 10.0
	DefaultAPIRateBurst      = 5
	DefaultAPIUserAgent      = "phishscan/1.0"

	// Enrichment Defaults
	DefaultEnrichmentDebounceDelay = 500 * time.Millisecond
	DefaultEnrichmentCacheTTL      = 5 * time.Minute

	// Bulk Defaults
	DefaultBulkMaxBatchSize = 100

	// Export Defaults
	DefaultExportOutputDir          = "reports"
	DefaultExportTimeLayout         = "2006-01-02 15:04:05"
	DefaultExportParquetCompression = "zstd"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Session Defaults
	DefaultSessionDir  = ".phishscan"
	DefaultSessionFile = "session.json"

	// EnvConfigPath names the environment variable that points at a config file.
	EnvConfigPath = "PHISHSCAN_CONFIG_PATH"
	// EnvPrefix is the prefix viper uses for environment overrides.
	EnvPrefix = "PHISHSCAN"
)
