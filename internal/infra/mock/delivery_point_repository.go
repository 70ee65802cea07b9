package mock

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type deliveryPointRepository struct {
	store *Store
}

// NewDeliveryPointRepository returns the seeded in-memory implementation.
func NewDeliveryPointRepository(store *Store) repository.DeliveryPointRepository {
	return &deliveryPointRepository{store: store}
}

func (r *deliveryPointRepository) List(ctx context.Context) ([]entity.DeliveryPoint, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]entity.DeliveryPoint, len(r.store.points))
	copy(out, r.store.points)

	return out, nil
}

func (r *deliveryPointRepository) FindByID(ctx context.Context, id string) (*entity.DeliveryPoint, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.points {
		if r.store.points[i].ID == id {
			point := r.store.points[i]

			return &point, nil
		}
	}

	return nil, domainerrors.ErrDeliveryPointNotFound
}

func (r *deliveryPointRepository) Create(ctx context.Context, point entity.DeliveryPoint) (*entity.DeliveryPoint, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if point.ID == "" {
		ids := make([]string, 0, len(r.store.points))
		for i := range r.store.points {
			ids = append(ids, r.store.points[i].ID)
		}
		point.ID = nextID("PE", ids)
	}
	if point.State == "" {
		point.State = entity.PointActive
	}

	r.store.points = append(r.store.points, point)

	return &point, nil
}

func (r *deliveryPointRepository) Update(ctx context.Context, id string, upd entity.DeliveryPointUpdate) (*entity.DeliveryPoint, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.points {
		if r.store.points[i].ID != id {
			continue
		}

		applyDeliveryPointUpdate(&r.store.points[i], upd)
		point := r.store.points[i]

		return &point, nil
	}

	return nil, domainerrors.ErrDeliveryPointNotFound
}

func (r *deliveryPointRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.points {
		if r.store.points[i].ID == id {
			r.store.points = append(r.store.points[:i], r.store.points[i+1:]...)

			return nil
		}
	}

	return domainerrors.ErrDeliveryPointNotFound
}

func applyDeliveryPointUpdate(point *entity.DeliveryPoint, upd entity.DeliveryPointUpdate) {
	if upd.Name != nil {
		point.Name = *upd.Name
	}
	if upd.PhysicalAddress != nil {
		point.PhysicalAddress = *upd.PhysicalAddress
	}
	if upd.Lat != nil {
		point.Lat = *upd.Lat
	}
	if upd.Lng != nil {
		point.Lng = *upd.Lng
	}
	if upd.Hours != nil {
		point.Hours = *upd.Hours
	}
	if upd.ContactReference != nil {
		point.ContactReference = *upd.ContactReference
	}
	if upd.State != nil {
		point.State = *upd.State
	}
}
