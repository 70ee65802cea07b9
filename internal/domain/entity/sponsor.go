package entity

// Sponsor represents the donor who funds gifts for a child ("padrino").
// SponsorshipHistoryIDs is a denormalized back-reference to Sponsorship
// records; it is a lookup aid, never ownership.
type Sponsor struct {
	ID                    string   `json:"id_padrino"`
	Name                  string   `json:"nombre"`
	Email                 string   `json:"email"`
	PasswordHash          *string  `json:"password_hash,omitempty"`
	RegistrationDate      string   `json:"fecha_registro"`
	GoogleAuthID          *string  `json:"id_google_auth,omitempty"`
	Address               string   `json:"direccion"`
	Phone                 string   `json:"telefono"`
	PhotoURL              *string  `json:"foto_url,omitempty"`
	SponsorshipHistoryIDs []string `json:"historial_apadrinamiento_ids"`
}

// SponsorUpdate carries a partial update; only non-nil fields are applied.
type SponsorUpdate struct {
	Name                  *string   `json:"nombre,omitempty"`
	Email                 *string   `json:"email,omitempty"`
	Address               *string   `json:"direccion,omitempty"`
	Phone                 *string   `json:"telefono,omitempty"`
	PhotoURL              *string   `json:"foto_url,omitempty"`
	GoogleAuthID          *string   `json:"id_google_auth,omitempty"`
	SponsorshipHistoryIDs *[]string `json:"historial_apadrinamiento_ids,omitempty"`
}
