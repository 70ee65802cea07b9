package mock

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type giftRequestRepository struct {
	store *Store
}

// NewGiftRequestRepository returns the seeded in-memory implementation.
func NewGiftRequestRepository(store *Store) repository.GiftRequestRepository {
	return &giftRequestRepository{store: store}
}

func (r *giftRequestRepository) List(ctx context.Context) ([]entity.GiftRequest, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]entity.GiftRequest, len(r.store.requests))
	copy(out, r.store.requests)

	return out, nil
}

func (r *giftRequestRepository) FindByID(ctx context.Context, id string) (*entity.GiftRequest, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.requests {
		if r.store.requests[i].ID == id {
			request := r.store.requests[i]

			return &request, nil
		}
	}

	return nil, domainerrors.ErrGiftRequestNotFound
}

func (r *giftRequestRepository) Create(ctx context.Context, request entity.GiftRequest) (*entity.GiftRequest, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if request.ID == "" {
		ids := make([]string, 0, len(r.store.requests))
		for i := range r.store.requests {
			ids = append(ids, r.store.requests[i].ID)
		}
		request.ID = nextID("SR", ids)
	}
	if request.State == "" {
		request.State = entity.RequestOpen
	}

	r.store.requests = append(r.store.requests, request)

	return &request, nil
}

func (r *giftRequestRepository) Update(ctx context.Context, id string, upd entity.GiftRequestUpdate) (*entity.GiftRequest, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.requests {
		if r.store.requests[i].ID != id {
			continue
		}

		applyGiftRequestUpdate(&r.store.requests[i], upd)
		request := r.store.requests[i]

		return &request, nil
	}

	return nil, domainerrors.ErrGiftRequestNotFound
}

func (r *giftRequestRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.requests {
		if r.store.requests[i].ID == id {
			r.store.requests = append(r.store.requests[:i], r.store.requests[i+1:]...)

			return nil
		}
	}

	return domainerrors.ErrGiftRequestNotFound
}

func applyGiftRequestUpdate(request *entity.GiftRequest, upd entity.GiftRequestUpdate) {
	if upd.InterestedSponsorID != nil {
		request.InterestedSponsorID = upd.InterestedSponsorID
	}
	if upd.Description != nil {
		request.Description = *upd.Description
	}
	if upd.CloseDate != nil {
		request.CloseDate = upd.CloseDate
	}
	if upd.State != nil {
		request.State = *upd.State
	}
	if upd.AssociatedDeliveryID != nil {
		request.AssociatedDeliveryID = upd.AssociatedDeliveryID
	}
}
