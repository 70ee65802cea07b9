package impl

import (
	"context"
	"testing"

	"smilelink/internal/domain/entity"
	"smilelink/internal/infra/mock"
	"smilelink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeliveryPointService(t *testing.T) usecase.DeliveryPointUsecase {
	t.Helper()

	return NewDeliveryPointService(mock.NewDeliveryPointRepository(newSeededStore(t)), testLogger())
}

func TestDeliveryPointService_ActiveFiltersInactive(t *testing.T) {
	svc := newDeliveryPointService(t)

	active, err := svc.ActiveDeliveryPoints(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(active))
	for _, p := range active {
		assert.Equal(t, entity.PointActive, p.State)
		ids = append(ids, p.ID)
	}

	// PE003 is seeded inactive.
	assert.ElementsMatch(t, []string{"PE001", "PE002"}, ids)
}

func TestDeliveryPointService_NearestOrdersByDistance(t *testing.T) {
	svc := newDeliveryPointService(t)

	// Just south of PE002.
	nearest, err := svc.NearestDeliveryPoints(context.Background(), 21.8650, -102.2900, 0)
	require.NoError(t, err)
	require.Len(t, nearest, 2)

	assert.Equal(t, "PE002", nearest[0].ID)
	assert.Equal(t, "PE001", nearest[1].ID)
}

func TestDeliveryPointService_NearestHonorsLimit(t *testing.T) {
	svc := newDeliveryPointService(t)

	nearest, err := svc.NearestDeliveryPoints(context.Background(), 21.8853, -102.2916, 1)
	require.NoError(t, err)
	require.Len(t, nearest, 1)
	assert.Equal(t, "PE001", nearest[0].ID)
}
