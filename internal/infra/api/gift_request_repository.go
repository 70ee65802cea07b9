package api

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type giftRequestRepository struct {
	client *Client
}

// NewGiftRequestRepository returns the live implementation backed by
// /solicitudes/.
func NewGiftRequestRepository(client *Client) repository.GiftRequestRepository {
	return &giftRequestRepository{client: client}
}

func (r *giftRequestRepository) List(ctx context.Context) ([]entity.GiftRequest, error) {
	var requests []entity.GiftRequest
	if err := r.client.getJSON(ctx, "/solicitudes/", &requests, nil); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *giftRequestRepository) FindByID(ctx context.Context, id string) (*entity.GiftRequest, error) {
	var request entity.GiftRequest
	if err := r.client.getJSON(ctx, "/solicitudes/"+id+"/", &request, domainerrors.ErrGiftRequestNotFound); err != nil {
		return nil, err
	}

	return &request, nil
}

func (r *giftRequestRepository) Create(ctx context.Context, request entity.GiftRequest) (*entity.GiftRequest, error) {
	var created entity.GiftRequest
	if err := r.client.postJSON(ctx, "/solicitudes/", request, &created, nil); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *giftRequestRepository) Update(ctx context.Context, id string, upd entity.GiftRequestUpdate) (*entity.GiftRequest, error) {
	var updated entity.GiftRequest
	if err := r.client.patchJSON(ctx, "/solicitudes/"+id+"/", upd, &updated, domainerrors.ErrGiftRequestNotFound); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *giftRequestRepository) Delete(ctx context.Context, id string) error {
	return r.client.deleteJSON(ctx, "/solicitudes/"+id+"/", domainerrors.ErrGiftRequestNotFound)
}
