// Package session holds the current authentication session: access and
// refresh tokens, their computed expiry, and the signed-in user profile.
// The store is the single source of truth for credentials and persists
// them under the data directory so a session survives process restarts.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StorageFile is the filename for the persisted session record.
const StorageFile = "auth-storage.json"

// Tokens is the token grant returned by the auth endpoints.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"` // seconds until the access token expires
}

// User is the signed-in profile as far as the session cares about it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// state is the persisted session record.
type state struct {
	AccessToken  string     `json:"access_token,omitempty"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	User         *User      `json:"user,omitempty"`
}

// Store is a durable, concurrency-safe session store.
type Store struct {
	path   string
	logger *slog.Logger

	mu sync.RWMutex
	st state
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a session store persisting to dir. Any previously saved
// session is loaded; a missing or unreadable record starts signed out.
func NewStore(dir string, opts ...StoreOption) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Store{
		path:   filepath.Join(dir, StorageFile),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(); err != nil {
		// A corrupt session record is not fatal; the user signs in again.
		s.logger.Warn("Discarding unreadable session record", "path", s.path, "error", err)
		s.st = state{}
	}

	return s, nil
}

// SetTokens stores a token grant and computes the access token expiry.
func (s *Store) SetTokens(tokens Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second)
	s.st.AccessToken = tokens.AccessToken
	s.st.RefreshToken = tokens.RefreshToken
	s.st.ExpiresAt = &expiresAt

	return s.persist()
}

// SetUser stores the signed-in profile.
func (s *Store) SetUser(user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.User = user
	return s.persist()
}

// Clear signs the session out, dropping all fields and the durable record.
// It is the terminal state when a token refresh fails.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st = state{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session record: %w", err)
	}
	return nil
}

// AccessToken returns the current access token, or "" when signed out.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.AccessToken
}

// RefreshToken returns the current refresh token, or "" when signed out.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.RefreshToken
}

// ExpiresAt returns the computed access token expiry, if known.
func (s *Store) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st.ExpiresAt == nil {
		return time.Time{}, false
	}
	return *s.st.ExpiresAt, true
}

// User returns the signed-in profile, or nil when none is stored.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.st.User == nil {
		return nil
	}
	u := *s.st.User
	return &u
}

// IsAuthenticated reports whether both a user and an access token are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.User != nil && s.st.AccessToken != ""
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session record: %w", err)
	}
	if err := json.Unmarshal(data, &s.st); err != nil {
		return fmt.Errorf("parse session record: %w", err)
	}
	return nil
}

// persist writes the session record. Callers must hold the write lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(&s.st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}
