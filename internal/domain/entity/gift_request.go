package entity

// RequestState is the lifecycle state of a gift request.
type RequestState string

const (
	RequestOpen       RequestState = "Abierta"
	RequestInProgress RequestState = "En Proceso"
	RequestFulfilled  RequestState = "Cumplida"
)

// GiftRequest is a child's stated wish, independent of any specific sponsor
// ("solicitud de regalo").
type GiftRequest struct {
	ID                    string       `json:"id_solicitud"`
	ChildID               string       `json:"id_nino"`
	InterestedSponsorID   *string      `json:"id_padrino_interesado,omitempty"`
	Description           string       `json:"descripcion_solicitud"`
	RequestDate           string       `json:"fecha_solicitud"`
	CloseDate             *string      `json:"fecha_cierre,omitempty"`
	State                 RequestState `json:"estado_solicitud"`
	AssociatedDeliveryID  *string      `json:"id_entrega_asociada,omitempty"`
}

// GiftRequestUpdate carries a partial update; only non-nil fields are applied.
type GiftRequestUpdate struct {
	InterestedSponsorID  *string       `json:"id_padrino_interesado,omitempty"`
	Description          *string       `json:"descripcion_solicitud,omitempty"`
	CloseDate            *string       `json:"fecha_cierre,omitempty"`
	State                *RequestState `json:"estado_solicitud,omitempty"`
	AssociatedDeliveryID *string       `json:"id_entrega_asociada,omitempty"`
}
