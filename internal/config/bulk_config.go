package config

// BulkConfig controls how bulk scans are split into backend requests.
// The backend rejects more than 100 addresses per request.
type BulkConfig struct {
	MaxBatchSize int `json:"max_batch_size,omitempty" yaml:"max_batch_size,omitempty" mapstructure:"max_batch_size" validate:"min=1,max=100"`
}

// NewDefaultBulkConfig creates default bulk configuration
func NewDefaultBulkConfig() BulkConfig {
	return BulkConfig{MaxBatchSize: DefaultBulkMaxBatchSize}
}
