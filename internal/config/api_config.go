package config

import (
	"strings"
	"time"
)

// APIConfig describes how to reach the classification backend.
type APIConfig struct {
	BaseURL            string        `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url" validate:"required,httpurl"`
	Timeout            time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty" mapstructure:"timeout" validate:"gt=0"`
	MaxRetries         int           `json:"max_retries,omitempty" yaml:"max_retries,omitempty" mapstructure:"max_retries" validate:"min=0,max=10"`
	RetryBaseDelay     time.Duration `json:"retry_base_delay,omitempty" yaml:"retry_base_delay,omitempty" mapstructure:"retry_base_delay"`
	RetryMaxDelay      time.Duration `json:"retry_max_delay,omitempty" yaml:"retry_max_delay,omitempty" mapstructure:"retry_max_delay"`
	RateLimit          float64       `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty" mapstructure:"rate_limit" validate:"min=0"`
	RateBurst          int           `json:"rate_burst,omitempty" yaml:"rate_burst,omitempty" mapstructure:"rate_burst" validate:"min=0"`
	UserAgent          string        `json:"user_agent,omitempty" yaml:"user_agent,omitempty" mapstructure:"user_agent"`
	InsecureSkipVerify bool          `json:"insecure_skip_verify,omitempty" yaml:"insecure_skip_verify,omitempty" mapstructure:"insecure_skip_verify"`
	EnableHTTP2        bool          `json:"enable_http2,omitempty" yaml:"enable_http2,omitempty" mapstructure:"enable_http2"`
}

// NewDefaultAPIConfig creates default API configuration
func NewDefaultAPIConfig() APIConfig {
	return APIConfig{
		BaseURL:        DefaultAPIBaseURL,
		Timeout:        DefaultAPITimeout,
		MaxRetries:     DefaultAPIMaxRetries,
		RetryBaseDelay: DefaultAPIRetryBaseDelay,
		RetryMaxDelay:  DefaultAPIRetryMaxDelay,
		RateLimit:      DefaultAPIRateLimit,
		RateBurst:      DefaultAPIRateBurst,
		UserAgent:      DefaultAPIUserAgent,
		EnableHTTP2:    true,
	}
}

// Endpoint joins the base URL and path without doubling slashes.
func (c APIConfig) Endpoint(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
