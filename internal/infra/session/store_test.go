package session

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"smilelink/config"
	"smilelink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*fileStore, string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()

	store := NewFileStore(cfg, slog.Default()).(*fileStore)

	return store, cfg.SessionPath()
}

func TestFileStore_SaveAndCurrent(t *testing.T) {
	store, _ := newTestStore(t)

	sponsor := &entity.Sponsor{
		ID:    "P001",
		Name:  "Juan Damián Ortega",
		Email: "juan@smilelink.org",
	}
	require.NoError(t, store.Save(sponsor))

	assert.True(t, store.IsLoggedIn())

	id, ok := store.CurrentID()
	assert.True(t, ok)
	assert.Equal(t, "P001", id)

	loaded, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, sponsor.Email, loaded.Email)
}

func TestFileStore_EmptyMeansLoggedOut(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.IsLoggedIn())

	loaded, err := store.Current()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStore_Clear(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(&entity.Sponsor{ID: "P001"}))
	require.NoError(t, store.Clear())

	assert.False(t, store.IsLoggedIn())

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestFileStore_CorruptFileTreatedAsLoggedOut(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	loaded, err := store.Current()
	require.NoError(t, err)
	assert.Nil(t, loaded)
	assert.False(t, store.IsLoggedIn())
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()

	first := NewFileStore(cfg, slog.Default())
	require.NoError(t, first.Save(&entity.Sponsor{ID: "P002", Email: "maria.gonzalez@email.com"}))

	// A fresh store over the same path sees the persisted principal.
	second := NewFileStore(cfg, slog.Default())
	loaded, err := second.Current()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "P002", loaded.ID)
}
