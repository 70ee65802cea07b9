package impl

import (
	"context"
	"log/slog"

	"smilelink/internal/domain/entity"
	"smilelink/internal/domain/repository"
	"smilelink/internal/usecase"

	"github.com/pkg/errors"
)

type sponsorService struct {
	sponsorRepo repository.SponsorRepository
	logger      *slog.Logger
}

// NewSponsorService is the constructor for sponsorService.
func NewSponsorService(
	sponsorRepo repository.SponsorRepository,
	logger *slog.Logger,
) usecase.SponsorUsecase {
	return &sponsorService{
		sponsorRepo: sponsorRepo,
		logger:      logger,
	}
}

func (srv *sponsorService) ListSponsors(ctx context.Context) ([]entity.Sponsor, error) {
	sponsors, err := srv.sponsorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sponsors")
	}

	return sponsors, nil
}

func (srv *sponsorService) GetSponsor(ctx context.Context, id string) (*entity.Sponsor, error) {
	sponsor, err := srv.sponsorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get sponsor %s", id)
	}

	return sponsor, nil
}

func (srv *sponsorService) UpdateSponsor(ctx context.Context, id string, upd entity.SponsorUpdate) (*entity.Sponsor, error) {
	updated, err := srv.sponsorRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, errors.Wrapf(err, "update sponsor %s", id)
	}

	srv.logger.Info("sponsor profile updated", slog.String("sponsorID", id))

	return updated, nil
}

func (srv *sponsorService) DeleteSponsor(ctx context.Context, id string) error {
	if err := srv.sponsorRepo.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "delete sponsor %s", id)
	}

	return nil
}
