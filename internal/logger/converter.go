package logger

import (
	"github.com/aleister1102/phishscan/internal/config"
)

// ConvertConfig converts application config to logger config
func ConvertConfig(cfg config.LogConfig) LoggerConfig {
	// Invalid levels are rejected by config validation; fall back quietly here.
	level, _ := ParseLevel(cfg.LogLevel)

	converted := DefaultLoggerConfig()
	converted.Level = level
	converted.Format = ParseFormat(cfg.LogFormat)
	converted.EnableFile = cfg.LogFile != ""
	converted.FilePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		converted.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		converted.MaxBackups = cfg.MaxLogBackups
	}
	return converted
}
