package repository

import "smilelink/internal/domain/entity"

// SessionStore persists the authenticated principal across restarts.
// There is no expiry: the session lives until Clear or storage wipe.
// Operations are local key-value reads/writes and take no context.
type SessionStore interface {
	// Save records the sponsor as the current principal.
	Save(sponsor *entity.Sponsor) error

	// Current returns the persisted sponsor, or nil when logged out.
	Current() (*entity.Sponsor, error)

	// CurrentID returns the persisted sponsor id without decoding the full
	// profile.
	CurrentID() (string, bool)

	IsLoggedIn() bool

	// Clear wipes the session (logout).
	Clear() error
}

// PrefsStore persists the free-form client configuration blob shared by the
// dashboard and the change poller.
type PrefsStore interface {
	// Notifications loads the toggle set, falling back to defaults when the
	// blob is missing or unreadable.
	Notifications() entity.NotificationPrefs

	SaveNotifications(prefs entity.NotificationPrefs) error
}
