package impl

import (
	"context"
	"testing"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
	"smilelink/internal/infra/mock"
	"smilelink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSponsorshipService(t *testing.T) (usecase.SponsorshipUsecase, *mock.Store) {
	t.Helper()

	store := newSeededStore(t)

	return NewSponsorshipService(
		mock.NewSponsorshipRepository(store),
		mock.NewDeliveryRepository(store),
		mock.NewChildRepository(store),
		testLogger(),
	), store
}

func TestSponsorshipService_CreateScenario(t *testing.T) {
	svc, store := newSponsorshipService(t)
	ctx := context.Background()

	created, err := svc.CreateSponsorship(ctx, &usecase.CreateSponsorshipInput{
		SponsorID: "P002",
		ChildID:   "N003",
		StartDate: "2026-08-30",
		Type:      string(entity.SponsorshipChoice),
	})
	require.NoError(t, err)

	// The assigned id follows the AP prefix past the seed's highest number.
	assert.Equal(t, "AP006", created.ID)
	assert.True(t, created.Active())

	// Retrievable through the sponsor-scoped query.
	forSponsor, err := svc.SponsorshipsForSponsor(ctx, "P002")
	require.NoError(t, err)

	found := false
	for _, sp := range forSponsor {
		if sp.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)

	// The child flips to sponsored with the matching back-references.
	child, err := mock.NewChildRepository(store).FindByID(ctx, "N003")
	require.NoError(t, err)
	assert.Equal(t, entity.SponsorshipSponsored, child.SponsorshipState)
	require.NotNil(t, child.CurrentSponsorID)
	assert.Equal(t, "P002", *child.CurrentSponsorID)
}

func TestSponsorshipService_CreateValidation(t *testing.T) {
	svc, _ := newSponsorshipService(t)

	_, err := svc.CreateSponsorship(context.Background(), &usecase.CreateSponsorshipInput{
		SponsorID: "P001",
		ChildID:   "N003",
		StartDate: "30/08/2026", // wrong layout
		Type:      string(entity.SponsorshipRandom),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSponsorshipService_ForChild(t *testing.T) {
	svc, _ := newSponsorshipService(t)

	sponsorships, err := svc.SponsorshipsForChild(context.Background(), "N002")
	require.NoError(t, err)

	// N002 appears in the active AP002 and the finished AP005.
	ids := make([]string, 0, len(sponsorships))
	for _, sp := range sponsorships {
		ids = append(ids, sp.ID)
	}
	assert.ElementsMatch(t, []string{"AP002", "AP005"}, ids)
}

func TestSponsorshipService_MarkDelivered(t *testing.T) {
	svc, store := newSponsorshipService(t)
	ctx := context.Background()

	updated, err := svc.MarkDelivered(ctx, "AP002", "E003", "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationDelivered, updated.State)

	delivery, err := mock.NewDeliveryRepository(store).FindByID(ctx, "E003")
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryDelivered, delivery.State)
	require.NotNil(t, delivery.ActualDeliveryDate)
	assert.Equal(t, "2026-08-30", *delivery.ActualDeliveryDate)
}

// failingSponsorshipRepo rejects updates while delegating everything else.
type failingSponsorshipRepo struct {
	repository.SponsorshipRepository
}

func (f *failingSponsorshipRepo) Update(ctx context.Context, id string, upd entity.SponsorshipUpdate) (*entity.Sponsorship, error) {
	return nil, domainerrors.NewTransportError(context.DeadlineExceeded)
}

func TestSponsorshipService_MarkDeliveredPartialFailure(t *testing.T) {
	store := newSeededStore(t)
	svc := NewSponsorshipService(
		&failingSponsorshipRepo{SponsorshipRepository: mock.NewSponsorshipRepository(store)},
		mock.NewDeliveryRepository(store),
		mock.NewChildRepository(store),
		testLogger(),
	)
	ctx := context.Background()

	_, err := svc.MarkDelivered(ctx, "AP002", "E003", "2026-08-30")
	require.Error(t, err)

	// The error names both records so the inconsistency is repairable.
	assert.Contains(t, err.Error(), "E003")
	assert.Contains(t, err.Error(), "AP002")

	// First write stuck: the delivery is closed even though the sponsorship
	// update failed.
	delivery, findErr := mock.NewDeliveryRepository(store).FindByID(ctx, "E003")
	require.NoError(t, findErr)
	assert.Equal(t, entity.DeliveryDelivered, delivery.State)
}
