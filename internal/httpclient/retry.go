package httpclient

import (
	"context"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/rs/zerolog"
)

// RetryHandler handles HTTP request retries with exponential backoff
type RetryHandler struct {
	maxRetries       int
	baseDelay        time.Duration
	maxDelay         time.Duration
	enableJitter     bool
	retryStatusCodes map[int]bool
	logger           zerolog.Logger
}

// RetryHandlerConfig configuration for retry handler
type RetryHandlerConfig struct {
	MaxRetries       int           `json:"max_retries"`
	BaseDelay        time.Duration `json:"base_delay"`
	MaxDelay         time.Duration `json:"max_delay"`
	EnableJitter     bool          `json:"enable_jitter"`
	RetryStatusCodes []int         `json:"retry_status_codes"`
}

// DefaultRetryHandlerConfig retries throttling and gateway failures twice.
func DefaultRetryHandlerConfig() RetryHandlerConfig {
	return RetryHandlerConfig{
		MaxRetries:   2,
		BaseDelay:    500 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		EnableJitter: true,
		RetryStatusCodes: []int{
			http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

// NewRetryHandler creates a new retry handler
func NewRetryHandler(config RetryHandlerConfig, logger zerolog.Logger) *RetryHandler {
	statusCodeMap := make(map[int]bool, len(config.RetryStatusCodes))
	for _, code := range config.RetryStatusCodes {
		statusCodeMap[code] = true
	}

	return &RetryHandler{
		maxRetries:       config.MaxRetries,
		baseDelay:        config.BaseDelay,
		maxDelay:         config.MaxDelay,
		enableJitter:     config.EnableJitter,
		retryStatusCodes: statusCodeMap,
		logger:           logger.With().Str("component", "RetryHandler").Logger(),
	}
}

// shouldRetryStatus decides whether a response status warrants another attempt.
// 429 means the request was not processed, so it is retried for any method;
// other statuses only for idempotent requests.
func (rh *RetryHandler) shouldRetryStatus(method string, statusCode int) bool {
	if !rh.retryStatusCodes[statusCode] {
		return false
	}
	return statusCode == http.StatusTooManyRequests || isIdempotent(method)
}

// CalculateDelay calculates the delay for the next retry attempt using exponential backoff
func (rh *RetryHandler) CalculateDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return rh.baseDelay
	}

	delay := rh.baseDelay * time.Duration(math.Pow(2, float64(attempt)))
	if rh.maxDelay > 0 && delay > rh.maxDelay {
		delay = rh.maxDelay
	}

	if rh.enableJitter && delay >= 10*time.Millisecond {
		jitter := time.Duration(rand.Int63n(int64(delay / 10)))
		delay += jitter
	}

	return delay
}

func (rh *RetryHandler) wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(rh.CalculateDelay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DoWithRetry executes an HTTP request with retry logic
func (rh *RetryHandler) DoWithRetry(ctx context.Context, doFunc func(*HTTPRequest) (*HTTPResponse, error), req *HTTPRequest) (*HTTPResponse, error) {
	var lastResp *HTTPResponse
	var lastErr error

	for attempt := 0; attempt <= rh.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := doFunc(req)
		if err != nil {
			lastResp, lastErr = nil, err
			if ctx.Err() != nil || !isIdempotent(req.Method) || attempt == rh.maxRetries {
				break
			}
			rh.logger.Debug().Str("url", req.URL).Int("attempt", attempt+1).Err(err).Msg("Network error, retrying")
			if werr := rh.wait(ctx, attempt); werr != nil {
				return nil, werr
			}
			continue
		}

		lastResp, lastErr = resp, nil
		if !rh.shouldRetryStatus(req.Method, resp.StatusCode) || attempt == rh.maxRetries {
			break
		}

		rh.logger.Warn().
			Str("url", req.URL).
			Int("status_code", resp.StatusCode).
			Int("attempt", attempt+1).
			Int("max_retries", rh.maxRetries).
			Msg("Retryable status, waiting before retry")
		if werr := rh.wait(ctx, attempt); werr != nil {
			return nil, werr
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return lastResp, nil
}

// networkError wraps a transport failure.
func networkError(url string, err error) error {
	return common.NewNetworkError(url, "request failed", err)
}
