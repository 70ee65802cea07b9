package api

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type deliveryRepository struct {
	client *Client
}

// NewDeliveryRepository returns the live implementation backed by /entregas/.
func NewDeliveryRepository(client *Client) repository.DeliveryRepository {
	return &deliveryRepository{client: client}
}

func (r *deliveryRepository) List(ctx context.Context) ([]entity.Delivery, error) {
	var deliveries []entity.Delivery
	if err := r.client.getJSON(ctx, "/entregas/", &deliveries, nil); err != nil {
		return nil, err
	}

	for i := range deliveries {
		normalizeDelivery(r.client, &deliveries[i])
	}

	return deliveries, nil
}

func (r *deliveryRepository) FindByID(ctx context.Context, id string) (*entity.Delivery, error) {
	var delivery entity.Delivery
	if err := r.client.getJSON(ctx, "/entregas/"+id+"/", &delivery, domainerrors.ErrDeliveryNotFound); err != nil {
		return nil, err
	}

	normalizeDelivery(r.client, &delivery)

	return &delivery, nil
}

func (r *deliveryRepository) Create(ctx context.Context, delivery entity.Delivery) (*entity.Delivery, error) {
	var created entity.Delivery
	if err := r.client.postJSON(ctx, "/entregas/", delivery, &created, nil); err != nil {
		return nil, err
	}

	normalizeDelivery(r.client, &created)

	return &created, nil
}

func (r *deliveryRepository) Update(ctx context.Context, id string, upd entity.DeliveryUpdate) (*entity.Delivery, error) {
	var updated entity.Delivery
	if err := r.client.patchJSON(ctx, "/entregas/"+id+"/", upd, &updated, domainerrors.ErrDeliveryNotFound); err != nil {
		return nil, err
	}

	normalizeDelivery(r.client, &updated)

	return &updated, nil
}

func (r *deliveryRepository) Delete(ctx context.Context, id string) error {
	return r.client.deleteJSON(ctx, "/entregas/"+id+"/", domainerrors.ErrDeliveryNotFound)
}

func normalizeDelivery(client *Client, delivery *entity.Delivery) {
	if delivery.EvidencePhotoPath != nil {
		fixed := client.NormalizeAssetURL(*delivery.EvidencePhotoPath)
		delivery.EvidencePhotoPath = &fixed
	}
}
