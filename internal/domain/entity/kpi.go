package entity

// KPISet is the fixed record of dashboard counts. The wire names match the
// backend's /dashboard/kpis/ payload.
//
// Partition invariant: AvailableChildren + SponsoredChildren == TotalChildren.
type KPISet struct {
	TotalChildren       int `json:"total_ninos"`
	AvailableChildren   int `json:"ninos_disponibles"`
	SponsoredChildren   int `json:"ninos_apadrinados"`
	TotalSponsors       int `json:"total_padrinos"`
	ActiveSponsors      int `json:"padrinos_activos"`
	ActiveSponsorships  int `json:"apadrinamientos_activos"`
	PendingDeliveries   int `json:"entregas_pendientes"`
	CompletedDeliveries int `json:"entregas_completadas"`
	OpenRequests        int `json:"solicitudes_abiertas"`
}
