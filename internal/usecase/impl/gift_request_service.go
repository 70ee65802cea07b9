package impl

import (
	"context"
	"log/slog"
	"time"

	"smilelink/internal/domain/entity"
	"smilelink/internal/domain/repository"
	"smilelink/internal/usecase"

	"github.com/pkg/errors"
)

type giftRequestService struct {
	requestRepo repository.GiftRequestRepository
	logger      *slog.Logger
}

// NewGiftRequestService is the constructor for giftRequestService.
func NewGiftRequestService(
	requestRepo repository.GiftRequestRepository,
	logger *slog.Logger,
) usecase.GiftRequestUsecase {
	return &giftRequestService{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (srv *giftRequestService) ListGiftRequests(ctx context.Context) ([]entity.GiftRequest, error) {
	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list gift requests")
	}

	return requests, nil
}

func (srv *giftRequestService) GetGiftRequest(ctx context.Context, id string) (*entity.GiftRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get gift request %s", id)
	}

	return request, nil
}

func (srv *giftRequestService) CreateGiftRequest(ctx context.Context, input *usecase.CreateGiftRequestInput) (*entity.GiftRequest, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	created, err := srv.requestRepo.Create(ctx, entity.GiftRequest{
		ChildID:             input.ChildID,
		InterestedSponsorID: input.InterestedSponsorID,
		Description:         input.Description,
		RequestDate:         entity.Today(time.Now()),
		State:               entity.RequestOpen,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create gift request")
	}

	srv.logger.Info("gift request recorded",
		slog.String("requestID", created.ID),
		slog.String("childID", created.ChildID))

	return created, nil
}

func (srv *giftRequestService) UpdateGiftRequest(ctx context.Context, id string, upd entity.GiftRequestUpdate) (*entity.GiftRequest, error) {
	updated, err := srv.requestRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, errors.Wrapf(err, "update gift request %s", id)
	}

	return updated, nil
}

func (srv *giftRequestService) OpenGiftRequests(ctx context.Context) ([]entity.GiftRequest, error) {
	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list gift requests")
	}

	open := make([]entity.GiftRequest, 0, len(requests))
	for i := range requests {
		if requests[i].State == entity.RequestOpen {
			open = append(open, requests[i])
		}
	}

	return open, nil
}

func (srv *giftRequestService) GiftRequestsForChild(ctx context.Context, childID string) ([]entity.GiftRequest, error) {
	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list gift requests")
	}

	matched := make([]entity.GiftRequest, 0, len(requests))
	for i := range requests {
		if requests[i].ChildID == childID {
			matched = append(matched, requests[i])
		}
	}

	return matched, nil
}
