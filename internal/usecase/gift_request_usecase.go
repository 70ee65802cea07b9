package usecase

import (
	"context"

	"smilelink/internal/domain/entity"
)

// GiftRequestUsecase defines the gift-request business operations.
type GiftRequestUsecase interface {
	ListGiftRequests(ctx context.Context) ([]entity.GiftRequest, error)
	GetGiftRequest(ctx context.Context, id string) (*entity.GiftRequest, error)
	CreateGiftRequest(ctx context.Context, input *CreateGiftRequestInput) (*entity.GiftRequest, error)
	UpdateGiftRequest(ctx context.Context, id string, upd entity.GiftRequestUpdate) (*entity.GiftRequest, error)

	OpenGiftRequests(ctx context.Context) ([]entity.GiftRequest, error)
	GiftRequestsForChild(ctx context.Context, childID string) ([]entity.GiftRequest, error)
}

// CreateGiftRequestInput defines the data required to record a child's wish.
type CreateGiftRequestInput struct {
	ChildID             string  `json:"id_nino" validate:"required"`
	Description         string  `json:"descripcion_solicitud" validate:"required,min=3"`
	InterestedSponsorID *string `json:"id_padrino_interesado,omitempty"`
}
