package usecase

import (
	"context"

	"smilelink/internal/domain/entity"
)

// SponsorUsecase defines the sponsor-facing business operations.
type SponsorUsecase interface {
	ListSponsors(ctx context.Context) ([]entity.Sponsor, error)
	GetSponsor(ctx context.Context, id string) (*entity.Sponsor, error)
	UpdateSponsor(ctx context.Context, id string, upd entity.SponsorUpdate) (*entity.Sponsor, error)
	DeleteSponsor(ctx context.Context, id string) error
}
