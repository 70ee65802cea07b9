package prefs

import (
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"smilelink/config"
	"smilelink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*fileStore, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()

	return NewFileStore(cfg, slog.Default()).(*fileStore), cfg
}

func TestFileStore_DefaultsWhenMissing(t *testing.T) {
	store, _ := newTestStore(t)

	prefs := store.Notifications()
	assert.Equal(t, entity.DefaultNotificationPrefs(), prefs)
}

func TestFileStore_SaveAndReload(t *testing.T) {
	store, _ := newTestStore(t)

	want := entity.NotificationPrefs{
		NewSponsorships: true,
		Deliveries:      false,
		Requests:        true,
	}
	require.NoError(t, store.SaveNotifications(want))

	assert.Equal(t, want, store.Notifications())
}

func TestFileStore_PreservesForeignKeys(t *testing.T) {
	store, cfg := newTestStore(t)

	// Another feature owns a key in the same blob.
	require.NoError(t, os.MkdirAll(cfg.Storage.Dir, 0o755))
	require.NoError(t, os.WriteFile(cfg.PrefsPath(), []byte(`{"theme":"dark","notif_nuevos":false}`), 0o600))

	prefs := store.Notifications()
	assert.False(t, prefs.NewSponsorships)
	assert.True(t, prefs.Deliveries) // absent key stays enabled

	prefs.Deliveries = false
	require.NoError(t, store.SaveNotifications(prefs))

	raw, err := os.ReadFile(cfg.PrefsPath())
	require.NoError(t, err)

	var blob map[string]any
	require.NoError(t, json.Unmarshal(raw, &blob))
	assert.Equal(t, "dark", blob["theme"])
	assert.Equal(t, false, blob["notif_entregas"])
}

func TestFileStore_CorruptBlobFallsBackToDefaults(t *testing.T) {
	store, cfg := newTestStore(t)

	require.NoError(t, os.MkdirAll(cfg.Storage.Dir, 0o755))
	require.NoError(t, os.WriteFile(cfg.PrefsPath(), []byte("not json"), 0o600))

	assert.Equal(t, entity.DefaultNotificationPrefs(), store.Notifications())
}
