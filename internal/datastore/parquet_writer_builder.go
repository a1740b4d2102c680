package datastore

import (
	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/config"
	"github.com/rs/zerolog"
)

// ParquetWriterBuilder provides a fluent interface for creating ParquetWriter
type ParquetWriterBuilder struct {
	logger       zerolog.Logger
	writerConfig ParquetWriterConfig
}

// NewParquetWriterBuilder creates a new ParquetWriterBuilder
func NewParquetWriterBuilder(logger zerolog.Logger) *ParquetWriterBuilder {
	return &ParquetWriterBuilder{
		logger:       logger.With().Str("component", "ParquetWriter").Logger(),
		writerConfig: DefaultParquetWriterConfig(),
	}
}

// WithExportConfig takes compression and output directory from the export section
func (b *ParquetWriterBuilder) WithExportConfig(cfg config.ExportConfig) *ParquetWriterBuilder {
	b.writerConfig = ParquetWriterConfigFromExport(cfg)
	return b
}

// WithWriterConfig sets the writer configuration
func (b *ParquetWriterBuilder) WithWriterConfig(cfg ParquetWriterConfig) *ParquetWriterBuilder {
	b.writerConfig = cfg
	return b
}

// Build creates a new ParquetWriter instance
func (b *ParquetWriterBuilder) Build() (*ParquetWriter, error) {
	if _, ok := compressionCodecs[b.writerConfig.CompressionType]; !ok {
		return nil, common.NewValidationError("compression", b.writerConfig.CompressionType, "unsupported parquet compression")
	}

	if b.writerConfig.OutputDir == "" {
		b.logger.Warn().Msg("Parquet output directory is empty, writing to the working directory")
	}

	return &ParquetWriter{
		logger:       b.logger,
		writerConfig: b.writerConfig,
		transformer:  NewRecordTransformer(b.logger),
	}, nil
}
