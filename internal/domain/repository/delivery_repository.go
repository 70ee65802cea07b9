package repository

import (
	"context"

	"smilelink/internal/domain/entity"
)

// DeliveryRepository defines the standard operations over deliveries.
type DeliveryRepository interface {
	List(ctx context.Context) ([]entity.Delivery, error)
	FindByID(ctx context.Context, id string) (*entity.Delivery, error)
	Create(ctx context.Context, delivery entity.Delivery) (*entity.Delivery, error)
	Update(ctx context.Context, id string, upd entity.DeliveryUpdate) (*entity.Delivery, error)
	Delete(ctx context.Context, id string) error
}
