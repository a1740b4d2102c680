package config

import "time"

// EnrichmentConfig tunes the as-you-type metadata lookup.
type EnrichmentConfig struct {
	DebounceDelay time.Duration `json:"debounce_delay,omitempty" yaml:"debounce_delay,omitempty" mapstructure:"debounce_delay" validate:"gt=0"`
	CacheTTL      time.Duration `json:"cache_ttl,omitempty" yaml:"cache_ttl,omitempty" mapstructure:"cache_ttl" validate:"min=0"`
}

// NewDefaultEnrichmentConfig creates default enrichment configuration
func NewDefaultEnrichmentConfig() EnrichmentConfig {
	return EnrichmentConfig{
		DebounceDelay: DefaultEnrichmentDebounceDelay,
		CacheTTL:      DefaultEnrichmentCacheTTL,
	}
}
