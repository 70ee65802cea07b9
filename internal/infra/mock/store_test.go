package mock

import (
	"context"
	"testing"
	"time"

	"smilelink/config"
	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore disables the artificial latency so tests run fast.
func newTestStore() *Store {
	cfg := &config.Config{}
	cfg.API.MockLatency = 0

	return NewStore(cfg, auth.NewBcryptHasher())
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		ids    []string
		want   string
	}{
		{name: "empty starts at one", prefix: "N", ids: nil, want: "N001"},
		{name: "continues sequence", prefix: "N", ids: []string{"N001", "N002"}, want: "N003"},
		{name: "gap does not reuse", prefix: "AP", ids: []string{"AP001", "AP005"}, want: "AP006"},
		{name: "foreign prefixes ignored", prefix: "E", ids: []string{"PE003", "E002"}, want: "E003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextID(tt.prefix, tt.ids))
		})
	}
}

func TestChildRepository_RoundTrip(t *testing.T) {
	store := newTestStore()
	repo := NewChildRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, entity.Child{
		Name:   "Valeria Ruiz",
		Age:    6,
		Gender: "Femenino",
		Needs:  []string{"Suéter"},
	})
	require.NoError(t, err)
	assert.Equal(t, "N005", created.ID)
	assert.Equal(t, entity.SponsorshipAvailable, created.SponsorshipState)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *found)
}

func TestChildRepository_PartialUpdateLeavesOtherFields(t *testing.T) {
	store := newTestStore()
	repo := NewChildRepository(store)
	ctx := context.Background()

	before, err := repo.FindByID(ctx, "N003")
	require.NoError(t, err)

	age := 8
	updated, err := repo.Update(ctx, "N003", entity.ChildUpdate{Age: &age})
	require.NoError(t, err)

	assert.Equal(t, 8, updated.Age)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Description, updated.Description)
	assert.Equal(t, before.Needs, updated.Needs)
	assert.Equal(t, before.SponsorshipState, updated.SponsorshipState)
}

func TestChildRepository_FindByID_NotFound(t *testing.T) {
	repo := NewChildRepository(newTestStore())

	child, err := repo.FindByID(context.Background(), "N999")
	assert.Nil(t, child)
	assert.ErrorIs(t, err, domainerrors.ErrChildNotFound)
}

func TestChildRepository_Delete(t *testing.T) {
	store := newTestStore()
	repo := NewChildRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "N003"))

	_, err := repo.FindByID(ctx, "N003")
	assert.ErrorIs(t, err, domainerrors.ErrChildNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "N003"), domainerrors.ErrChildNotFound)
}

func TestSponsorshipRepository_CreateSkipsSeedGap(t *testing.T) {
	store := newTestStore()
	repo := NewSponsorshipRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, entity.Sponsorship{
		SponsorID: "P002",
		ChildID:   "N003",
		StartDate: "2026-08-30",
		Type:      entity.SponsorshipChoice,
	})
	require.NoError(t, err)

	// The seed holds AP001..AP005 with AP004 missing; the next id continues
	// past the maximum instead of filling the gap.
	assert.Equal(t, "AP006", created.ID)
	assert.Equal(t, entity.RegistrationActive, created.State)
	assert.NotNil(t, created.DeliveryIDs)

	found, err := repo.FindByID(ctx, "AP006")
	require.NoError(t, err)
	assert.True(t, found.Active())
}

func TestListReturnsCopies(t *testing.T) {
	store := newTestStore()
	repo := NewChildRepository(store)
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)

	// Mutating the returned slice must not leak into the store.
	first[0].Name = "clobbered"

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "clobbered", second[0].Name)
}

func TestStore_LatencyHonorsCancellation(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.MockLatency = 5 * time.Second // far beyond the test deadline

	store := NewStore(cfg, auth.NewBcryptHasher())
	repo := NewChildRepository(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
