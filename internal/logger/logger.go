package logger

import (
	"github.com/aleister1102/phishscan/internal/config"
	"github.com/rs/zerolog"
)

// New creates the process logger from configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}

// NewWithRunID creates a logger whose entries carry run_id.
func NewWithRunID(cfg config.LogConfig, runID string) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).WithRunID(runID).Build()
}

// Component derives a child logger tagged with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
