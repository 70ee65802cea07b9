// Package session persists the authenticated sponsor profile as a JSON file,
// the Go counterpart of the app's local session storage. The session has no
// expiry; it lives until logout or storage wipe.
package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"smilelink/config"
	"smilelink/internal/domain/entity"
	"smilelink/internal/domain/repository"

	"github.com/pkg/errors"
)

type fileStore struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewFileStore persists the session at cfg.SessionPath().
func NewFileStore(cfg *config.Config, logger *slog.Logger) repository.SessionStore {
	return &fileStore{
		path:   cfg.SessionPath(),
		logger: logger,
	}
}

func (s *fileStore) Save(sponsor *entity.Sponsor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create session dir")
	}

	payload, err := json.MarshalIndent(sponsor, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}

	// Write-then-rename keeps a crash from leaving a truncated session.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return errors.Wrap(err, "write session file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replace session file")
	}

	return nil
}

func (s *fileStore) Current() (*entity.Sponsor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *fileStore) CurrentID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sponsor, err := s.read()
	if err != nil || sponsor == nil {
		return "", false
	}

	return sponsor.ID, true
}

func (s *fileStore) IsLoggedIn() bool {
	_, ok := s.CurrentID()

	return ok
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session file")
	}

	return nil
}

// read returns nil without error when no session exists. A corrupt file is
// treated as logged out rather than locking the user into an error loop.
func (s *fileStore) read() (*entity.Sponsor, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session file")
	}

	var sponsor entity.Sponsor
	if err := json.Unmarshal(raw, &sponsor); err != nil {
		s.logger.Warn("discarding unreadable session file",
			slog.String("path", s.path),
			slog.Any("error", err))

		return nil, nil
	}
	if sponsor.ID == "" {
		return nil, nil
	}

	return &sponsor, nil
}
