package impl

import (
	"context"
	"log/slog"

	"smilelink/internal/domain/entity"
	"smilelink/internal/domain/repository"
	"smilelink/internal/usecase"

	"github.com/pkg/errors"
)

type sponsorshipService struct {
	sponsorshipRepo repository.SponsorshipRepository
	deliveryRepo    repository.DeliveryRepository
	childRepo       repository.ChildRepository
	logger          *slog.Logger
}

// NewSponsorshipService is the constructor for sponsorshipService.
func NewSponsorshipService(
	sponsorshipRepo repository.SponsorshipRepository,
	deliveryRepo repository.DeliveryRepository,
	childRepo repository.ChildRepository,
	logger *slog.Logger,
) usecase.SponsorshipUsecase {
	return &sponsorshipService{
		sponsorshipRepo: sponsorshipRepo,
		deliveryRepo:    deliveryRepo,
		childRepo:       childRepo,
		logger:          logger,
	}
}

func (srv *sponsorshipService) ListSponsorships(ctx context.Context) ([]entity.Sponsorship, error) {
	sponsorships, err := srv.sponsorshipRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sponsorships")
	}

	return sponsorships, nil
}

func (srv *sponsorshipService) GetSponsorship(ctx context.Context, id string) (*entity.Sponsorship, error) {
	sponsorship, err := srv.sponsorshipRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get sponsorship %s", id)
	}

	return sponsorship, nil
}

// CreateSponsorship starts a sponsorship and marks the child as sponsored so
// the availability list stays consistent.
func (srv *sponsorshipService) CreateSponsorship(ctx context.Context, input *usecase.CreateSponsorshipInput) (*entity.Sponsorship, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	created, err := srv.sponsorshipRepo.Create(ctx, entity.Sponsorship{
		SponsorID:       input.SponsorID,
		ChildID:         input.ChildID,
		StartDate:       input.StartDate,
		Type:            entity.SponsorshipType(input.Type),
		State:           entity.RegistrationActive,
		DeliveryIDs:     []string{},
		DeliveryLat:     input.DeliveryLat,
		DeliveryLng:     input.DeliveryLng,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryPointID: input.DeliveryPointID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create sponsorship")
	}

	sponsored := entity.SponsorshipSponsored
	if _, err := srv.childRepo.Update(ctx, input.ChildID, entity.ChildUpdate{
		CurrentSponsorID: &created.SponsorID,
		SponsorshipState: &sponsored,
		SponsorshipDate:  &created.StartDate,
	}); err != nil {
		// The sponsorship exists; the child record is stale until repaired.
		srv.logger.Error("sponsorship created but child not marked sponsored",
			slog.String("sponsorshipID", created.ID),
			slog.String("childID", input.ChildID),
			slog.Any("error", err))
	}

	srv.logger.Info("sponsorship started",
		slog.String("sponsorshipID", created.ID),
		slog.String("sponsorID", created.SponsorID),
		slog.String("childID", created.ChildID))

	return created, nil
}

func (srv *sponsorshipService) UpdateSponsorship(ctx context.Context, id string, upd entity.SponsorshipUpdate) (*entity.Sponsorship, error) {
	updated, err := srv.sponsorshipRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, errors.Wrapf(err, "update sponsorship %s", id)
	}

	return updated, nil
}

func (srv *sponsorshipService) DeleteSponsorship(ctx context.Context, id string) error {
	if err := srv.sponsorshipRepo.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "delete sponsorship %s", id)
	}

	return nil
}

func (srv *sponsorshipService) SponsorshipsForSponsor(ctx context.Context, sponsorID string) ([]entity.Sponsorship, error) {
	sponsorships, err := srv.sponsorshipRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sponsorships")
	}

	matched := make([]entity.Sponsorship, 0, len(sponsorships))
	for i := range sponsorships {
		if sponsorships[i].SponsorID == sponsorID {
			matched = append(matched, sponsorships[i])
		}
	}

	return matched, nil
}

func (srv *sponsorshipService) SponsorshipsForChild(ctx context.Context, childID string) ([]entity.Sponsorship, error) {
	sponsorships, err := srv.sponsorshipRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sponsorships")
	}

	matched := make([]entity.Sponsorship, 0, len(sponsorships))
	for i := range sponsorships {
		if sponsorships[i].ChildID == childID {
			matched = append(matched, sponsorships[i])
		}
	}

	return matched, nil
}

// MarkDelivered closes the delivery, then moves the sponsorship to Entregado.
// Two sequential writes; when the second fails the first is NOT rolled back:
// the delivery stays closed, the error names the sponsorship left behind, and
// operators repair it from the log line.
func (srv *sponsorshipService) MarkDelivered(ctx context.Context, sponsorshipID, deliveryID, deliveredOn string) (*entity.Sponsorship, error) {
	delivered := entity.DeliveryDelivered
	if _, err := srv.deliveryRepo.Update(ctx, deliveryID, entity.DeliveryUpdate{
		State:              &delivered,
		ActualDeliveryDate: &deliveredOn,
	}); err != nil {
		return nil, errors.Wrapf(err, "close delivery %s", deliveryID)
	}

	registered := entity.RegistrationDelivered
	updated, err := srv.sponsorshipRepo.Update(ctx, sponsorshipID, entity.SponsorshipUpdate{
		State: &registered,
	})
	if err != nil {
		srv.logger.Error("delivery closed but sponsorship not marked delivered",
			slog.String("deliveryID", deliveryID),
			slog.String("sponsorshipID", sponsorshipID),
			slog.Any("error", err))

		return nil, errors.Wrapf(err,
			"delivery %s closed but sponsorship %s still needs the Entregado state", deliveryID, sponsorshipID)
	}

	srv.logger.Info("sponsorship marked delivered",
		slog.String("sponsorshipID", sponsorshipID),
		slog.String("deliveryID", deliveryID))

	return updated, nil
}
