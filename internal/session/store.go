package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Session errors.
var (
	ErrNoSession      = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired")
	ErrEmptyToken     = errors.New("token cannot be empty")
)

// TokenSource supplies the bearer token and can be told the backend rejected it.
type TokenSource interface {
	Token() (string, error)
	Discard() error
}

// FileStore persists a single session as JSON on disk.
// Safe for concurrent use.
type FileStore struct {
	path string
	ttl  time.Duration

	mu sync.RWMutex
}

// NewFileStore creates a store backed by path. Entries saved through it expire after ttl.
func NewFileStore(path string, ttl time.Duration) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("session file path cannot be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be > 0, got %s", ttl)
	}
	return &FileStore{path: path, ttl: ttl}, nil
}

// Save stores token, replacing any previous session.
func (s *FileStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(NewEntry(token, s.ttl), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	// Write to temporary file first, then rename for atomicity
	tempPath := s.path + ".tmp"
	if err = os.WriteFile(tempPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err = os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename session file: %w", err)
	}
	return nil
}

// Load returns the stored entry.
// Returns ErrNoSession if none exists and ErrSessionExpired if it has expired.
func (s *FileStore) Load() (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var entry Entry
	if err = json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if entry.Token == "" {
		return nil, ErrNoSession
	}
	if entry.IsExpired() {
		return &entry, ErrSessionExpired
	}
	return &entry, nil
}

// Token implements TokenSource.
func (s *FileStore) Token() (string, error) {
	entry, err := s.Load()
	if err != nil {
		return "", err
	}
	return entry.Token, nil
}

// Discard removes the stored session. It is idempotent.
func (s *FileStore) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	return nil
}

// Path returns the session file location.
func (s *FileStore) Path() string {
	return s.path
}

// StaticToken is a TokenSource for a token supplied out of band (environment).
// Discard forgets it for the rest of the process.
type StaticToken struct {
	mu    sync.Mutex
	token string
}

// NewStaticToken wraps token.
func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: token}
}

// Token implements TokenSource.
func (s *StaticToken) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", ErrNoSession
	}
	return s.token, nil
}

// Discard implements TokenSource.
func (s *StaticToken) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
