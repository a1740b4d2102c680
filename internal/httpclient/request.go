package httpclient

import (
	"context"
	"net/http"
)

// HTTPRequest describes one call. Body is a byte slice so retries can resend it.
type HTTPRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
	Context context.Context
}

// HTTPResponse is a fully-read response.
type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	RequestID  string
}

// IsSuccess reports a 2xx status.
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *HTTPRequest) context() context.Context {
	if r.Context == nil {
		return context.Background()
	}
	return r.Context
}

func isIdempotent(method string) bool {
	switch method {
	case "", http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}
