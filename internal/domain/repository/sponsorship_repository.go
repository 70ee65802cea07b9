package repository

import (
	"context"

	"smilelink/internal/domain/entity"
)

// SponsorshipRepository defines the standard operations over sponsorships.
type SponsorshipRepository interface {
	List(ctx context.Context) ([]entity.Sponsorship, error)
	FindByID(ctx context.Context, id string) (*entity.Sponsorship, error)
	Create(ctx context.Context, sponsorship entity.Sponsorship) (*entity.Sponsorship, error)
	Update(ctx context.Context, id string, upd entity.SponsorshipUpdate) (*entity.Sponsorship, error)
	Delete(ctx context.Context, id string) error
}
