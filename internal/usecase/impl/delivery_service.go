package impl

import (
	"context"
	"io"
	"log/slog"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
	"smilelink/internal/domain/service"
	"smilelink/internal/usecase"

	"github.com/pkg/errors"
)

type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	uploader     service.Uploader
	logger       *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(
	deliveryRepo repository.DeliveryRepository,
	uploader service.Uploader,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		deliveryRepo: deliveryRepo,
		uploader:     uploader,
		logger:       logger,
	}
}

func (srv *deliveryService) ListDeliveries(ctx context.Context) ([]entity.Delivery, error) {
	deliveries, err := srv.deliveryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list deliveries")
	}

	return deliveries, nil
}

func (srv *deliveryService) GetDelivery(ctx context.Context, id string) (*entity.Delivery, error) {
	delivery, err := srv.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get delivery %s", id)
	}

	return delivery, nil
}

func (srv *deliveryService) CreateDelivery(ctx context.Context, input *usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	created, err := srv.deliveryRepo.Create(ctx, entity.Delivery{
		SponsorshipID:   input.SponsorshipID,
		GiftDescription: input.GiftDescription,
		ScheduledDate:   input.ScheduledDate,
		State:           entity.DeliveryPending,
		Notes:           input.Notes,
		DeliveryPointID: input.DeliveryPointID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create delivery")
	}

	srv.logger.Info("delivery scheduled",
		slog.String("deliveryID", created.ID),
		slog.String("sponsorshipID", created.SponsorshipID))

	return created, nil
}

// UpdateDelivery guards the state machine: a supplied state must be reachable
// from the current one along Pendiente -> En Proceso -> Entregado.
func (srv *deliveryService) UpdateDelivery(ctx context.Context, id string, upd entity.DeliveryUpdate) (*entity.Delivery, error) {
	if upd.State != nil {
		current, err := srv.deliveryRepo.FindByID(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "get delivery %s", id)
		}

		if !current.State.CanTransitionTo(*upd.State) {
			return nil, errors.Wrapf(domainerrors.ErrInvalidStateTransition,
				"delivery %s: %s -> %s", id, current.State, *upd.State)
		}
	}

	updated, err := srv.deliveryRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, errors.Wrapf(err, "update delivery %s", id)
	}

	return updated, nil
}

func (srv *deliveryService) DeleteDelivery(ctx context.Context, id string) error {
	if err := srv.deliveryRepo.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "delete delivery %s", id)
	}

	return nil
}

func (srv *deliveryService) DeliveriesForSponsorship(ctx context.Context, sponsorshipID string) ([]entity.Delivery, error) {
	deliveries, err := srv.deliveryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list deliveries")
	}

	matched := make([]entity.Delivery, 0, len(deliveries))
	for i := range deliveries {
		if deliveries[i].SponsorshipID == sponsorshipID {
			matched = append(matched, deliveries[i])
		}
	}

	return matched, nil
}

func (srv *deliveryService) UploadEvidence(ctx context.Context, deliveryID, filename string, content io.Reader) (string, error) {
	url, err := srv.uploader.UploadEvidence(ctx, deliveryID, filename, content)
	if err != nil {
		return "", errors.Wrapf(err, "upload evidence for delivery %s", deliveryID)
	}

	srv.logger.Info("evidence uploaded",
		slog.String("deliveryID", deliveryID),
		slog.String("url", url))

	return url, nil
}
