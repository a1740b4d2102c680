package httpclient

import (
	"testing"
	"time"

	"github.com/aleister1102/phishscan/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientBuilder(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithTimeout(15 * time.Second).
		WithUserAgent("test-agent").
		WithFollowRedirects(false).
		WithInsecureSkipVerify(true).
		WithRateLimit(5, 2).
		WithHTTP2(false).
		Build()

	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, client.config.Timeout)
	assert.Equal(t, "test-agent", client.config.UserAgent)
	assert.False(t, client.config.FollowRedirects)
	assert.True(t, client.config.InsecureSkipVerify)
	assert.False(t, client.config.EnableHTTP2)
	assert.NotNil(t, client.limiter)
}

func TestHTTPClientBuilder_DefaultValues(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	defaults := DefaultHTTPClientConfig()
	assert.Equal(t, defaults.Timeout, client.config.Timeout)
	assert.Equal(t, defaults.UserAgent, client.config.UserAgent)
	assert.True(t, client.config.EnableHTTP2)
	assert.Nil(t, client.limiter)
}

func TestConfigFromAPI(t *testing.T) {
	api := config.NewDefaultAPIConfig()
	api.Timeout = 3 * time.Second
	api.MaxRetries = 4
	api.UserAgent = "custom/2.0"

	cfg := ConfigFromAPI(api)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 4, cfg.Retry.MaxRetries)
	assert.Equal(t, "custom/2.0", cfg.UserAgent)
	assert.Equal(t, api.RateLimit, cfg.RateLimit)
}
