package entity

// PointState marks whether a delivery point accepts handovers.
type PointState string

const (
	PointActive   PointState = "Activo"
	PointInactive PointState = "Inactivo"
)

// DeliveryPoint is a physical drop-off/pickup location ("punto de entrega").
// Read-mostly reference data.
type DeliveryPoint struct {
	ID               string     `json:"id_punto_entrega"`
	Name             string     `json:"nombre_punto"`
	PhysicalAddress  string     `json:"direccion_fisica"`
	Lat              float64    `json:"latitud"`
	Lng              float64    `json:"longitud"`
	Hours            string     `json:"horario_atencion"`
	ContactReference string     `json:"contacto_referencia"`
	State            PointState `json:"estado_punto"`
}

// DeliveryPointUpdate carries a partial update; only non-nil fields are applied.
type DeliveryPointUpdate struct {
	Name             *string     `json:"nombre_punto,omitempty"`
	PhysicalAddress  *string     `json:"direccion_fisica,omitempty"`
	Lat              *float64    `json:"latitud,omitempty"`
	Lng              *float64    `json:"longitud,omitempty"`
	Hours            *string     `json:"horario_atencion,omitempty"`
	ContactReference *string     `json:"contacto_referencia,omitempty"`
	State            *PointState `json:"estado_punto,omitempty"`
}
