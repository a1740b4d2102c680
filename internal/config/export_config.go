package config

// ExportConfig controls report output.
type ExportConfig struct {
	OutputDir          string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" mapstructure:"output_dir" validate:"required"`
	TimeLayout         string `json:"time_layout,omitempty" yaml:"time_layout,omitempty" mapstructure:"time_layout" validate:"required"`
	ParquetCompression string `json:"parquet_compression,omitempty" yaml:"parquet_compression,omitempty" mapstructure:"parquet_compression" validate:"omitempty,compression"`
}

// NewDefaultExportConfig creates default export configuration
func NewDefaultExportConfig() ExportConfig {
	return ExportConfig{
		OutputDir:          DefaultExportOutputDir,
		TimeLayout:         DefaultExportTimeLayout,
		ParquetCompression: DefaultExportParquetCompression,
	}
}
