package config

import (
	"os"
	"path/filepath"
)

// SessionConfig says where the login session is persisted between runs.
type SessionConfig struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`
}

// NewDefaultSessionConfig creates default session configuration
func NewDefaultSessionConfig() SessionConfig {
	return SessionConfig{Path: DefaultSessionPath()}
}

// DefaultSessionPath returns ~/.phishscan/session.json, or a relative path when
// the home directory is unknown.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(DefaultSessionDir, DefaultSessionFile)
	}
	return filepath.Join(home, DefaultSessionDir, DefaultSessionFile)
}
