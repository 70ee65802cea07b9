// Package prefs persists the free-form client configuration blob. The only
// typed view today is the notification toggle set; unknown keys written by
// other app versions are preserved across saves.
package prefs

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

// NewFileStore persists preferences at cfg.PrefsPath().
func NewFileStore(cfg *config.Config, logger *slog.Logger) repository.PrefsStore {
	return &fileStore{
		path:   cfg.PrefsPath(),
		logger: logger,
	}
}

func (s *fileStore) Notifications() entity.NotificationPrefs {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("preferences unreadable, using defaults",
				slog.String("path", s.path),
				slog.Any("error", err))
		}

		return entity.DefaultNotificationPrefs()
	}

	// Absent keys default to enabled, so a blob written before a toggle
	// existed keeps the new category on.
	prefs := entity.DefaultNotificationPrefs()
	if err := json.Unmarshal(raw, &prefs); err != nil {
		s.logger.Warn("preferences corrupt, using defaults",
			slog.String("path", s.path),
			slog.Any("error", err))

		return entity.DefaultNotificationPrefs()
	}

	return prefs
}

func (s *fileStore) SaveNotifications(prefs entity.NotificationPrefs) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Merge over the existing blob so keys owned by other features survive.
	blob := map[string]any{}
	if raw, err := os.ReadFile(s.path); err == nil {
		_ = json.Unmarshal(raw, &blob)
	}

	blob["notif_nuevos"] = prefs.NewSponsorships
	blob["notif_entregas"] = prefs.Deliveries
	blob["notif_cartas"] = prefs.Requests

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create prefs dir")
	}

	payload, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal preferences")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return errors.Wrap(err, "write prefs file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replace prefs file")
	}

	return nil
}
