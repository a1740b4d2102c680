// Package backend is the typed client for the classification service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/config"
	"github.com/aleister1102/phishscan/internal/httpclient"
	"github.com/aleister1102/phishscan/internal/session"
	"github.com/rs/zerolog"
)

// Endpoint paths relative to the configured base URL.
const (
	PathLogin       = "/api/auth/login"
	PathRegister    = "/api/auth/register"
	PathHealth      = "/api/health"
	PathURLInfo     = "/api/url-info"
	PathPredict     = "/api/predict"
	PathPredictBulk = "/api/predict/bulk"
	PathHistory     = "/api/history"
	PathStatistics  = "/api/statistics"
	PathProfile     = "/api/profile"
)

// Client issues JSON requests against the backend.
type Client struct {
	http   *httpclient.HTTPClient
	cfg    config.APIConfig
	logger zerolog.Logger
}

// NewClient creates a backend client on top of an HTTP client.
func NewClient(httpClient *httpclient.HTTPClient, cfg config.APIConfig, logger zerolog.Logger) *Client {
	return &Client{
		http:   httpClient,
		cfg:    cfg,
		logger: logger.With().Str("component", "BackendClient").Logger(),
	}
}

// NewClientFromConfig builds the HTTP client from the API section and wraps it.
func NewClientFromConfig(cfg config.APIConfig, logger zerolog.Logger) (*Client, error) {
	httpClient, err := httpclient.NewHTTPClientBuilder(logger).
		WithConfig(httpclient.ConfigFromAPI(cfg)).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to create HTTP client")
	}
	return NewClient(httpClient, cfg, logger), nil
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

type errorBody struct {
	Error string `json:"error"`
}

type call struct {
	method  string
	path    string
	session *session.Session
	body    interface{}
	out     interface{}
	// acceptStatus lists non-2xx statuses whose body is still decoded into out.
	acceptStatus []int
}

func (c *Client) do(ctx context.Context, req call) error {
	if req.session != nil {
		if err := req.session.Require(); err != nil {
			return err
		}
	}

	headers := map[string]string{}
	var payload []byte
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return common.WrapErrorf(err, "failed to encode %s request", req.path)
		}
		payload = data
		headers["Content-Type"] = "application/json"
	}
	if req.session != nil {
		headers["Authorization"] = req.session.AuthorizationHeader()
	}

	resp, err := c.http.Do(&httpclient.HTTPRequest{
		Method:  req.method,
		URL:     c.cfg.Endpoint(req.path),
		Headers: headers,
		Body:    payload,
		Context: ctx,
	})
	if err != nil {
		return common.WrapErrorf(err, "%s %s", req.method, req.path)
	}

	if !resp.IsSuccess() && !accepts(req.acceptStatus, resp.StatusCode) {
		apiErr := decodeError(resp)
		c.logger.Debug().
			Str("path", req.path).
			Str("request_id", resp.RequestID).
			Int("status_code", resp.StatusCode).
			Str("message", apiErr.Message).
			Msg("Backend rejected request")
		return apiErr
	}

	if req.out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, req.out); err != nil {
		return common.WrapErrorf(err, "failed to decode %s response", req.path)
	}
	return nil
}

func decodeError(resp *httpclient.HTTPResponse) *common.APIError {
	var body errorBody
	if len(bytes.TrimSpace(resp.Body)) > 0 {
		_ = json.Unmarshal(resp.Body, &body)
	}
	return common.NewAPIError(resp.StatusCode, strings.TrimSpace(body.Error))
}

func accepts(statuses []int, code int) bool {
	for _, s := range statuses {
		if s == code {
			return true
		}
	}
	return false
}

func (c *Client) get(ctx context.Context, path string, sess *session.Session, out interface{}) error {
	return c.do(ctx, call{method: http.MethodGet, path: path, session: sess, out: out})
}

func (c *Client) post(ctx context.Context, path string, sess *session.Session, body, out interface{}) error {
	return c.do(ctx, call{method: http.MethodPost, path: path, session: sess, body: body, out: out})
}
