package entity

import "time"

// SponsorshipType distinguishes how the sponsor/child match was made.
type SponsorshipType string

const (
	SponsorshipRandom SponsorshipType = "Aleatorio"
	SponsorshipChoice SponsorshipType = "Elección Padrino"
)

// RegistrationState is the lifecycle state of a sponsorship record.
type RegistrationState string

const (
	RegistrationActive    RegistrationState = "Activo"
	RegistrationFinished  RegistrationState = "Finalizado"
	RegistrationDelivered RegistrationState = "Entregado"
)

// Sponsorship links one sponsor to one child over a time period
// ("apadrinamiento"). At most one Sponsorship may be Active per child at a
// time; the invariant is enforced by the caller, not by this layer.
type Sponsorship struct {
	ID              string            `json:"id_apadrinamiento"`
	SponsorID       string            `json:"id_padrino"`
	ChildID         string            `json:"id_nino"`
	StartDate       string            `json:"fecha_inicio"`
	EndDate         *string           `json:"fecha_fin,omitempty"`
	Type            SponsorshipType   `json:"tipo_apadrinamiento"`
	State           RegistrationState `json:"estado_apadrinamiento_registro"`
	DeliveryIDs     []string          `json:"entregas_ids"`
	DeliveryLat     *float64          `json:"ubicacion_entrega_lat,omitempty"`
	DeliveryLng     *float64          `json:"ubicacion_entrega_lng,omitempty"`
	DeliveryAddress *string           `json:"direccion_entrega,omitempty"`
	DeliveryPointID *string           `json:"id_punto_entrega,omitempty"`
}

// Active reports whether the sponsorship is the child's current one.
func (s *Sponsorship) Active() bool {
	return s.State == RegistrationActive
}

// StartedWithin reports whether the sponsorship started inside the given
// window ending at now. Unparseable start dates count as outside the window.
func (s *Sponsorship) StartedWithin(window time.Duration, now time.Time) bool {
	start, err := time.Parse(DateLayout, s.StartDate)
	if err != nil {
		return false
	}

	return now.Sub(start) < window
}

// SponsorshipUpdate carries a partial update; only non-nil fields are applied.
type SponsorshipUpdate struct {
	EndDate         *string            `json:"fecha_fin,omitempty"`
	State           *RegistrationState `json:"estado_apadrinamiento_registro,omitempty"`
	DeliveryIDs     *[]string          `json:"entregas_ids,omitempty"`
	DeliveryLat     *float64           `json:"ubicacion_entrega_lat,omitempty"`
	DeliveryLng     *float64           `json:"ubicacion_entrega_lng,omitempty"`
	DeliveryAddress *string            `json:"direccion_entrega,omitempty"`
	DeliveryPointID *string            `json:"id_punto_entrega,omitempty"`
}
