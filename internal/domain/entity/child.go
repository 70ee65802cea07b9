// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
//
// Field names are English in memory; the JSON tags carry the backend's
// snake_case Spanish wire names. Dates travel as "YYYY-MM-DD" strings.
package entity

import "time"

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// SponsorshipState describes whether a child currently has an active sponsor.
type SponsorshipState string

const (
	SponsorshipAvailable SponsorshipState = "Disponible"
	SponsorshipSponsored SponsorshipState = "Apadrinado"
)

// Child represents a child registered in the program.
// SponsorshipState must stay consistent with the existence of an active
// Sponsorship referencing this child; the consistency is owned by the caller,
// not by this layer.
type Child struct {
	ID               string           `json:"id_nino"`
	Name             string           `json:"nombre"`
	Age              int              `json:"edad"`
	Gender           string           `json:"genero"` // "Masculino" | "Femenino"
	Description      string           `json:"descripcion"`
	Needs            []string         `json:"necesidades"`
	CurrentSponsorID *string          `json:"id_padrino_actual,omitempty"`
	SponsorshipState SponsorshipState `json:"estado_apadrinamiento"`
	SponsorshipDate  *string          `json:"fecha_apadrinamiento_actual,omitempty"`
	AvatarURL        *string          `json:"avatar_url,omitempty"`
}

// Available reports whether the child can be matched with a new sponsor.
func (c *Child) Available() bool {
	return c.SponsorshipState == SponsorshipAvailable
}

// ChildUpdate carries a partial update: only non-nil fields are applied.
// It marshals to a PATCH body containing exactly the supplied fields.
type ChildUpdate struct {
	Name             *string           `json:"nombre,omitempty"`
	Age              *int              `json:"edad,omitempty"`
	Gender           *string           `json:"genero,omitempty"`
	Description      *string           `json:"descripcion,omitempty"`
	Needs            *[]string         `json:"necesidades,omitempty"`
	CurrentSponsorID *string           `json:"id_padrino_actual,omitempty"`
	SponsorshipState *SponsorshipState `json:"estado_apadrinamiento,omitempty"`
	SponsorshipDate  *string           `json:"fecha_apadrinamiento_actual,omitempty"`
	AvatarURL        *string           `json:"avatar_url,omitempty"`
}

// Today formats now in the wire date layout.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
