package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/rs/zerolog"
)

// Store persists a session as a single JSON document between CLI invocations.
type Store struct {
	path   string
	logger zerolog.Logger
}

// NewStore creates a file-backed store at path.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With().Str("component", "SessionStore").Logger(),
	}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved session. A missing file yields ErrNoSession.
func (s *Store) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, common.ErrNoSession
		}
		return Session{}, common.WrapError(err, "failed to read session file")
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, common.WrapErrorf(err, "failed to parse session file %s", s.path)
	}
	if !sess.Valid() {
		return Session{}, common.ErrNoSession
	}
	return sess, nil
}

// Save writes the session with owner-only permissions. The file is replaced atomically.
func (s *Store) Save(sess Session) error {
	if err := sess.Require(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return common.WrapError(err, "failed to create session directory")
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return common.WrapError(err, "failed to encode session")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return common.WrapError(err, "failed to write session file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Str("username", sess.Username).Msg("Session saved")
	return nil
}

// Clear removes the saved session. Removing a missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return common.WrapError(err, "failed to remove session file")
	}
	s.logger.Debug().Str("path", s.path).Msg("Session cleared")
	return nil
}
