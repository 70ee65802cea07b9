package usecase

import (
	"context"

	"smilelink/internal/domain/entity"
)

// SponsorshipUsecase defines the sponsorship-facing business operations.
type SponsorshipUsecase interface {
	ListSponsorships(ctx context.Context) ([]entity.Sponsorship, error)
	GetSponsorship(ctx context.Context, id string) (*entity.Sponsorship, error)
	CreateSponsorship(ctx context.Context, input *CreateSponsorshipInput) (*entity.Sponsorship, error)
	UpdateSponsorship(ctx context.Context, id string, upd entity.SponsorshipUpdate) (*entity.Sponsorship, error)
	DeleteSponsorship(ctx context.Context, id string) error

	SponsorshipsForSponsor(ctx context.Context, sponsorID string) ([]entity.Sponsorship, error)
	SponsorshipsForChild(ctx context.Context, childID string) ([]entity.Sponsorship, error)

	// MarkDelivered closes the given delivery and then moves the parent
	// sponsorship to the Entregado state. The two writes are not atomic: when
	// the second fails the delivery stays closed and the error names the
	// inconsistent sponsorship for manual repair.
	MarkDelivered(ctx context.Context, sponsorshipID, deliveryID string, deliveredOn string) (*entity.Sponsorship, error)
}

// CreateSponsorshipInput defines the data required to start a sponsorship.
type CreateSponsorshipInput struct {
	SponsorID       string   `json:"id_padrino" validate:"required"`
	ChildID         string   `json:"id_nino" validate:"required"`
	StartDate       string   `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	Type            string   `json:"tipo_apadrinamiento" validate:"required,oneof=Aleatorio 'Elección Padrino'"`
	DeliveryLat     *float64 `json:"ubicacion_entrega_lat,omitempty" validate:"omitempty,latitude"`
	DeliveryLng     *float64 `json:"ubicacion_entrega_lng,omitempty" validate:"omitempty,longitude"`
	DeliveryAddress *string  `json:"direccion_entrega,omitempty"`
	DeliveryPointID *string  `json:"id_punto_entrega,omitempty"`
}
