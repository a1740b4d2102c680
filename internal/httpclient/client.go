package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// RequestIDHeader carries a per-request identifier for correlating logs.
const RequestIDHeader = "X-Request-ID"

// HTTPClient wraps net/http.Client with retries, rate limiting and request IDs.
type HTTPClient struct {
	client       *http.Client
	config       HTTPClientConfig
	logger       zerolog.Logger
	retryHandler *RetryHandler
	limiter      *RequestLimiter
}

// NewHTTPClient creates a new HTTP client with the given configuration using net/http
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	logger = logger.With().Str("component", "HTTPClient").Logger()

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		TLSHandshakeTimeout: config.TLSHandshakeTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify, //nolint:gosec // opt-in for self-signed dev backends
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if config.MaxRedirects > 0 {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= config.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", config.MaxRedirects)
			}
			return nil
		}
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("http2_enabled", config.EnableHTTP2).
		Float64("rate_limit", config.RateLimit).
		Int("max_retries", config.Retry.MaxRetries).
		Msg("HTTP client created")

	return &HTTPClient{
		client:       client,
		config:       config,
		logger:       logger,
		retryHandler: NewRetryHandler(config.Retry, logger),
		limiter:      NewRequestLimiter(config.RateLimit, config.RateBurst),
	}, nil
}

// Do performs an HTTP request, retrying according to the retry configuration.
func (c *HTTPClient) Do(req *HTTPRequest) (*HTTPResponse, error) {
	ctx := req.context()
	if c.retryHandler != nil {
		return c.retryHandler.DoWithRetry(ctx, c.do, req)
	}
	return c.do(req)
}

// do performs a single attempt.
func (c *HTTPClient) do(req *HTTPRequest) (*HTTPResponse, error) {
	ctx := req.context()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, common.NewValidationError("url", req.URL, err.Error())
	}

	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	requestID := httpReq.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
		httpReq.Header.Set(RequestIDHeader, requestID)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, common.WrapErrorf(err, "%s %s", method, req.URL)
		}
		return nil, networkError(req.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	reader := io.Reader(resp.Body)
	if c.config.MaxResponseSize > 0 {
		reader = io.LimitReader(resp.Body, c.config.MaxResponseSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, networkError(req.URL, err)
	}
	if c.config.MaxResponseSize > 0 && int64(len(data)) > c.config.MaxResponseSize {
		return nil, common.NewHTTPErrorWithURL(resp.StatusCode, "response body exceeds size limit", req.URL)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", req.URL).
		Str("request_id", requestID).
		Int("status_code", resp.StatusCode).
		Int("bytes", len(data)).
		Msg("HTTP request completed")

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       data,
		RequestID:  requestID,
	}, nil
}
