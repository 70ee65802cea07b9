package mock

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type deliveryRepository struct {
	store *Store
}

// NewDeliveryRepository returns the seeded in-memory implementation.
func NewDeliveryRepository(store *Store) repository.DeliveryRepository {
	return &deliveryRepository{store: store}
}

func (r *deliveryRepository) List(ctx context.Context) ([]entity.Delivery, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]entity.Delivery, len(r.store.deliveries))
	copy(out, r.store.deliveries)

	return out, nil
}

func (r *deliveryRepository) FindByID(ctx context.Context, id string) (*entity.Delivery, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.deliveries {
		if r.store.deliveries[i].ID == id {
			delivery := r.store.deliveries[i]

			return &delivery, nil
		}
	}

	return nil, domainerrors.ErrDeliveryNotFound
}

func (r *deliveryRepository) Create(ctx context.Context, delivery entity.Delivery) (*entity.Delivery, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if delivery.ID == "" {
		ids := make([]string, 0, len(r.store.deliveries))
		for i := range r.store.deliveries {
			ids = append(ids, r.store.deliveries[i].ID)
		}
		delivery.ID = nextID("E", ids)
	}
	if delivery.State == "" {
		delivery.State = entity.DeliveryPending
	}

	r.store.deliveries = append(r.store.deliveries, delivery)

	return &delivery, nil
}

func (r *deliveryRepository) Update(ctx context.Context, id string, upd entity.DeliveryUpdate) (*entity.Delivery, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.deliveries {
		if r.store.deliveries[i].ID != id {
			continue
		}

		applyDeliveryUpdate(&r.store.deliveries[i], upd)
		delivery := r.store.deliveries[i]

		return &delivery, nil
	}

	return nil, domainerrors.ErrDeliveryNotFound
}

func (r *deliveryRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.deliveries {
		if r.store.deliveries[i].ID == id {
			r.store.deliveries = append(r.store.deliveries[:i], r.store.deliveries[i+1:]...)

			return nil
		}
	}

	return domainerrors.ErrDeliveryNotFound
}

func applyDeliveryUpdate(delivery *entity.Delivery, upd entity.DeliveryUpdate) {
	if upd.GiftDescription != nil {
		delivery.GiftDescription = *upd.GiftDescription
	}
	if upd.ScheduledDate != nil {
		delivery.ScheduledDate = *upd.ScheduledDate
	}
	if upd.ActualDeliveryDate != nil {
		delivery.ActualDeliveryDate = upd.ActualDeliveryDate
	}
	if upd.State != nil {
		delivery.State = *upd.State
	}
	if upd.Notes != nil {
		delivery.Notes = *upd.Notes
	}
	if upd.DeliveryPointID != nil {
		delivery.DeliveryPointID = *upd.DeliveryPointID
	}
	if upd.EvidencePhotoPath != nil {
		delivery.EvidencePhotoPath = upd.EvidencePhotoPath
	}
}
