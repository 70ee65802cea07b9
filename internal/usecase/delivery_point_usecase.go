package usecase

import (
	"context"

	"smilelink/internal/domain/entity"
)

// DeliveryPointUsecase defines the delivery-point business operations.
// Writes are admin-surface pass-throughs; the app mostly reads.
type DeliveryPointUsecase interface {
	ListDeliveryPoints(ctx context.Context) ([]entity.DeliveryPoint, error)
	GetDeliveryPoint(ctx context.Context, id string) (*entity.DeliveryPoint, error)

	// ActiveDeliveryPoints filters out points not accepting handovers.
	ActiveDeliveryPoints(ctx context.Context) ([]entity.DeliveryPoint, error)

	// NearestDeliveryPoints returns active points sorted by great-circle
	// distance from the given position, at most limit entries.
	NearestDeliveryPoints(ctx context.Context, lat, lng float64, limit int) ([]entity.DeliveryPoint, error)
}
