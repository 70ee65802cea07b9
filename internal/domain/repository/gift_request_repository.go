package repository

import (
	"context"

	"smilelink/internal/domain/entity"
)

// GiftRequestRepository defines the standard operations over gift requests.
type GiftRequestRepository interface {
	List(ctx context.Context) ([]entity.GiftRequest, error)
	FindByID(ctx context.Context, id string) (*entity.GiftRequest, error)
	Create(ctx context.Context, request entity.GiftRequest) (*entity.GiftRequest, error)
	Update(ctx context.Context, id string, upd entity.GiftRequestUpdate) (*entity.GiftRequest, error)
	Delete(ctx context.Context, id string) error
}
