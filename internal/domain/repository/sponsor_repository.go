package repository

import (
	"context"

	"smilelink/internal/domain/entity"
)

// SponsorRepository defines the standard operations over sponsors.
type SponsorRepository interface {
	List(ctx context.Context) ([]entity.Sponsor, error)
	FindByID(ctx context.Context, id string) (*entity.Sponsor, error)
	Create(ctx context.Context, sponsor entity.Sponsor) (*entity.Sponsor, error)
	Update(ctx context.Context, id string, upd entity.SponsorUpdate) (*entity.Sponsor, error)
	Delete(ctx context.Context, id string) error
}
