package entity

// NotificationPrefs is the user-editable toggle set for poller emissions.
// The wire names match the admin dashboard's persisted "appConfig" blob.
// A disabled category is still fetched for id tracking; only emission stops.
type NotificationPrefs struct {
	NewSponsorships bool `json:"notif_nuevos"`
	Deliveries      bool `json:"notif_entregas"`
	Requests        bool `json:"notif_cartas"`
}

// DefaultNotificationPrefs enables every category, matching a fresh install.
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{
		NewSponsorships: true,
		Deliveries:      true,
		Requests:        true,
	}
}

// Enabled reports whether the given category may emit events.
func (p NotificationPrefs) Enabled(category EventCategory) bool {
	switch category {
	case CategorySponsorships:
		return p.NewSponsorships
	case CategoryDeliveries:
		return p.Deliveries
	case CategoryRequests:
		return p.Requests
	default:
		return false
	}
}
