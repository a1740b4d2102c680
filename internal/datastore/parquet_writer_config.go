package datastore

import (
	"strings"

	"github.com/aleister1102/phishscan/internal/config"
)

// ParquetWriterConfig holds configuration for ParquetWriter
type ParquetWriterConfig struct {
	CompressionType string
	OutputDir       string
}

// DefaultParquetWriterConfig returns default configuration
func DefaultParquetWriterConfig() ParquetWriterConfig {
	return ParquetWriterConfig{
		CompressionType: config.DefaultExportParquetCompression,
		OutputDir:       config.DefaultExportOutputDir,
	}
}

// ParquetWriterConfigFromExport derives writer settings from the export section.
func ParquetWriterConfigFromExport(cfg config.ExportConfig) ParquetWriterConfig {
	wc := DefaultParquetWriterConfig()
	if cfg.ParquetCompression != "" {
		wc.CompressionType = strings.ToLower(cfg.ParquetCompression)
	}
	if cfg.OutputDir != "" {
		wc.OutputDir = cfg.OutputDir
	}
	return wc
}
