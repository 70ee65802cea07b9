package entity

// DeliveryState is the lifecycle state of a gift handover.
// Transitions run one direction only: Pending -> InProgress -> Delivered.
type DeliveryState string

const (
	DeliveryPending    DeliveryState = "Pendiente"
	DeliveryInProgress DeliveryState = "En Proceso"
	DeliveryDelivered  DeliveryState = "Entregado"
)

// deliveryRank orders states along the one-directional transition chain.
var deliveryRank = map[DeliveryState]int{
	DeliveryPending:    0,
	DeliveryInProgress: 1,
	DeliveryDelivered:  2,
}

// CanTransitionTo reports whether moving from s to next respects the
// one-directional chain. Staying in place is allowed.
func (s DeliveryState) CanTransitionTo(next DeliveryState) bool {
	from, okFrom := deliveryRank[s]
	to, okTo := deliveryRank[next]

	return okFrom && okTo && to >= from
}

// Delivery is a single gift-handover event tied to a Sponsorship ("entrega").
type Delivery struct {
	ID                 string        `json:"id_entrega"`
	SponsorshipID      string        `json:"id_apadrinamiento"`
	GiftDescription    string        `json:"descripcion_regalo"`
	ScheduledDate      string        `json:"fecha_programada"`
	ActualDeliveryDate *string       `json:"fecha_entrega_real,omitempty"`
	State              DeliveryState `json:"estado_entrega"`
	Notes              string        `json:"observaciones"`
	DeliveryPointID    string        `json:"id_punto_entrega"`
	EvidencePhotoPath  *string       `json:"evidencia_foto_path,omitempty"`
}

// Open reports whether the delivery still needs attention.
func (d *Delivery) Open() bool {
	return d.State == DeliveryPending || d.State == DeliveryInProgress
}

// DeliveryUpdate carries a partial update; only non-nil fields are applied.
type DeliveryUpdate struct {
	GiftDescription    *string        `json:"descripcion_regalo,omitempty"`
	ScheduledDate      *string        `json:"fecha_programada,omitempty"`
	ActualDeliveryDate *string        `json:"fecha_entrega_real,omitempty"`
	State              *DeliveryState `json:"estado_entrega,omitempty"`
	Notes              *string        `json:"observaciones,omitempty"`
	DeliveryPointID    *string        `json:"id_punto_entrega,omitempty"`
	EvidencePhotoPath  *string        `json:"evidencia_foto_path,omitempty"`
}
