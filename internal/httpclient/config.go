package httpclient

import (
	"time"

	"github.com/aleister1102/phishscan/internal/config"
)

// HTTPClientConfig holds configuration for the backend HTTP client
type HTTPClientConfig struct {
	Timeout               time.Duration     // Request timeout
	InsecureSkipVerify    bool              // Skip TLS verification
	FollowRedirects       bool              // Whether to follow redirects
	MaxRedirects          int               // Maximum number of redirects to follow
	UserAgent             string            // User-Agent sent on every request
	CustomHeaders         map[string]string // Headers added to all requests
	MaxIdleConns          int               // Maximum idle connections
	MaxIdleConnsPerHost   int               // Maximum idle connections per host
	IdleConnTimeout       time.Duration     // Idle connection timeout
	TLSHandshakeTimeout   time.Duration     // TLS handshake timeout
	DialTimeout           time.Duration     // Connection dial timeout
	KeepAlive             time.Duration     // Keep-alive duration
	EnableHTTP2           bool              // Enable HTTP/2 support
	MaxResponseSize       int64             // Responses larger than this are rejected; 0 means no limit
	RateLimit             float64           // Requests per second; 0 disables limiting
	RateBurst             int               // Burst allowed by the limiter
	Retry                 RetryHandlerConfig
}

// DefaultHTTPClientConfig returns the default HTTP client configuration
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             30 * time.Second,
		FollowRedirects:     true,
		MaxRedirects:        5,
		UserAgent:           config.DefaultAPIUserAgent,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialTimeout:         10 * time.Second,
		KeepAlive:           30 * time.Second,
		EnableHTTP2:         true,
		MaxResponseSize:     16 * 1024 * 1024,
		CustomHeaders: map[string]string{
			"Accept": "application/json",
		},
		Retry: DefaultRetryHandlerConfig(),
	}
}

// ConfigFromAPI derives client settings from the application's API section.
func ConfigFromAPI(api config.APIConfig) HTTPClientConfig {
	cfg := DefaultHTTPClientConfig()
	cfg.Timeout = api.Timeout
	cfg.InsecureSkipVerify = api.InsecureSkipVerify
	cfg.EnableHTTP2 = api.EnableHTTP2
	cfg.RateLimit = api.RateLimit
	cfg.RateBurst = api.RateBurst
	if api.UserAgent != "" {
		cfg.UserAgent = api.UserAgent
	}
	cfg.Retry.MaxRetries = api.MaxRetries
	if api.RetryBaseDelay > 0 {
		cfg.Retry.BaseDelay = api.RetryBaseDelay
	}
	if api.RetryMaxDelay > 0 {
		cfg.Retry.MaxDelay = api.RetryMaxDelay
	}
	return cfg
}
