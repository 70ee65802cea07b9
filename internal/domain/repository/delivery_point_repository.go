package repository

import (
	"context"

	"smilelink/internal/domain/entity"
)

// DeliveryPointRepository defines the standard operations over delivery
// points. Read-mostly; writes come from the admin surface only.
type DeliveryPointRepository interface {
	List(ctx context.Context) ([]entity.DeliveryPoint, error)
	FindByID(ctx context.Context, id string) (*entity.DeliveryPoint, error)
	Create(ctx context.Context, point entity.DeliveryPoint) (*entity.DeliveryPoint, error)
	Update(ctx context.Context, id string, upd entity.DeliveryPointUpdate) (*entity.DeliveryPoint, error)
	Delete(ctx context.Context, id string) error
}
