package api

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type deliveryPointRepository struct {
	client *Client
}

// NewDeliveryPointRepository returns the live implementation backed by
// /puntos-entrega/.
func NewDeliveryPointRepository(client *Client) repository.DeliveryPointRepository {
	return &deliveryPointRepository{client: client}
}

func (r *deliveryPointRepository) List(ctx context.Context) ([]entity.DeliveryPoint, error) {
	var points []entity.DeliveryPoint
	if err := r.client.getJSON(ctx, "/puntos-entrega/", &points, nil); err != nil {
		return nil, err
	}

	return points, nil
}

func (r *deliveryPointRepository) FindByID(ctx context.Context, id string) (*entity.DeliveryPoint, error) {
	var point entity.DeliveryPoint
	if err := r.client.getJSON(ctx, "/puntos-entrega/"+id+"/", &point, domainerrors.ErrDeliveryPointNotFound); err != nil {
		return nil, err
	}

	return &point, nil
}

func (r *deliveryPointRepository) Create(ctx context.Context, point entity.DeliveryPoint) (*entity.DeliveryPoint, error) {
	var created entity.DeliveryPoint
	if err := r.client.postJSON(ctx, "/puntos-entrega/", point, &created, nil); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *deliveryPointRepository) Update(ctx context.Context, id string, upd entity.DeliveryPointUpdate) (*entity.DeliveryPoint, error) {
	var updated entity.DeliveryPoint
	if err := r.client.patchJSON(ctx, "/puntos-entrega/"+id+"/", upd, &updated, domainerrors.ErrDeliveryPointNotFound); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *deliveryPointRepository) Delete(ctx context.Context, id string) error {
	return r.client.deleteJSON(ctx, "/puntos-entrega/"+id+"/", domainerrors.ErrDeliveryPointNotFound)
}
