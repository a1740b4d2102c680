package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Messages shown to the user when no backend message is available.
const (
	MsgInvalidURL    = "Please enter a valid website address"
	MsgLoginRequired = "Please log in to continue"
	MsgScanFailed    = "An error occurred"
	MsgBulkFailed    = "Failed to scan URLs"
	MsgBulkEmpty     = "Please add URLs to scan"
	MsgFileRead      = "Failed to read file"
	MsgEnrichFailed  = "Could not fetch website information"
	MsgHistoryFailed = "Failed to fetch history"
	MsgStatsFailed   = "Failed to fetch statistics"
	MsgProfileFailed = "Failed to fetch profile"
)

// Sentinel errors shared by the scan pipeline.
var (
	// ErrInvalidInput indicates the caller passed something we refuse to send upstream
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidURL indicates a web address that failed normalization
	ErrInvalidURL = errors.New("please enter a valid website address")
	// ErrNoSession indicates an authenticated operation was attempted without a token
	ErrNoSession = errors.New("not logged in")
	// ErrUnauthorized indicates the backend rejected the bearer token
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTimeout indicates an operation timed out
	ErrTimeout = errors.New("operation timed out")
	// ErrNetworkFailure indicates network connectivity issues
	ErrNetworkFailure = errors.New("network failure")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap lets callers match every validation failure with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Section string
	Field   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Section != "" && e.Field != "" {
		return fmt.Sprintf("configuration error in section '%s', field '%s': %s", e.Section, e.Field, e.Reason)
	} else if e.Section != "" {
		return fmt.Sprintf("configuration error in section '%s': %s", e.Section, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(section, field, reason string) *ConfigurationError {
	return &ConfigurationError{
		Section: section,
		Field:   field,
		Reason:  reason,
	}
}

// NetworkError represents a transport failure before any HTTP status was received
type NetworkError struct {
	URL     string
	Reason  string
	Wrapped error
}

func (e *NetworkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("network error for '%s': %s: %v", e.URL, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("network error for '%s': %s", e.URL, e.Reason)
}

func (e *NetworkError) Unwrap() error {
	if e.Wrapped != nil {
		return e.Wrapped
	}
	return ErrNetworkFailure
}

// Is reports every NetworkError as ErrNetworkFailure.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetworkFailure
}

// NewNetworkError creates a new network error
func NewNetworkError(url, reason string, wrapped error) *NetworkError {
	return &NetworkError{
		URL:     url,
		Reason:  reason,
		Wrapped: wrapped,
	}
}

// HTTPError represents a non-2xx response whose body carried no usable message
type HTTPError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *HTTPError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("HTTP %d error for '%s': %s", e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d error: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTP error
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewHTTPErrorWithURL creates a new HTTP error with URL context
func NewHTTPErrorWithURL(statusCode int, message, url string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		URL:        url,
	}
}

// APIError is a non-2xx response carrying the backend's {"error": "..."} payload.
// Message is shown to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return e.Message
}

// Is maps authentication failures onto ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// ErrorKind classifies failures the way controllers surface them.
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindValidation ErrorKind = "validation"
	KindAuth       ErrorKind = "auth"
	KindAPI        ErrorKind = "api"
	KindNetwork    ErrorKind = "network"
	KindCancelled  ErrorKind = "cancelled"
	KindInternal   ErrorKind = "internal"
)

// Kind returns the category of err.
func Kind(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var apiErr *APIError
	var httpErr *HTTPError
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidURL):
		return KindValidation
	case errors.Is(err, ErrNoSession), errors.Is(err, ErrUnauthorized):
		return KindAuth
	case errors.Is(err, context.Canceled):
		return KindCancelled
	case errors.As(err, &apiErr), errors.As(err, &httpErr):
		return KindAPI
	case errors.Is(err, ErrNetworkFailure), errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return KindNetwork
	default:
		return KindInternal
	}
}

// UserMessage extracts the message a controller should display for err.
// Backend-provided messages win; everything else collapses to fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	switch {
	case errors.Is(err, ErrInvalidURL):
		return MsgInvalidURL
	case errors.Is(err, ErrNoSession), errors.Is(err, ErrUnauthorized):
		return MsgLoginRequired
	}

	return fallback
}
