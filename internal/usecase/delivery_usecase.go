package usecase

import (
	"context"
	"io"

	"smilelink/internal/domain/entity"
)

// DeliveryUsecase defines the delivery-facing business operations.
type DeliveryUsecase interface {
	ListDeliveries(ctx context.Context) ([]entity.Delivery, error)
	GetDelivery(ctx context.Context, id string) (*entity.Delivery, error)
	CreateDelivery(ctx context.Context, input *CreateDeliveryInput) (*entity.Delivery, error)

	// UpdateDelivery rejects state changes that run against the
	// Pendiente -> En Proceso -> Entregado chain.
	UpdateDelivery(ctx context.Context, id string, upd entity.DeliveryUpdate) (*entity.Delivery, error)
	DeleteDelivery(ctx context.Context, id string) error

	DeliveriesForSponsorship(ctx context.Context, sponsorshipID string) ([]entity.Delivery, error)

	// UploadEvidence stores the handover photo and returns the reachable URL.
	UploadEvidence(ctx context.Context, deliveryID, filename string, content io.Reader) (string, error)
}

// CreateDeliveryInput defines the data required to schedule a delivery.
type CreateDeliveryInput struct {
	SponsorshipID   string `json:"id_apadrinamiento" validate:"required"`
	GiftDescription string `json:"descripcion_regalo" validate:"required,min=3"`
	ScheduledDate   string `json:"fecha_programada" validate:"required,datetime=2006-01-02"`
	Notes           string `json:"observaciones"`
	DeliveryPointID string `json:"id_punto_entrega" validate:"required"`
}
