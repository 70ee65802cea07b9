package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventCategory names one of the independently toggleable notification
// categories watched by the change poller.
type EventCategory string

const (
	CategorySponsorships EventCategory = "apadrinamientos"
	CategoryDeliveries   EventCategory = "entregas"
	CategoryRequests     EventCategory = "solicitudes"
)

// EventLevel mirrors the toast severity used by the admin dashboard.
type EventLevel string

const (
	LevelSuccess EventLevel = "success"
	LevelWarning EventLevel = "warning"
	LevelInfo    EventLevel = "info"
)

// Event is a single user-facing notification raised by the change poller.
type Event struct {
	ID        uuid.UUID     `json:"id"`
	Category  EventCategory `json:"category"`
	Level     EventLevel    `json:"level"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	EntityID  string        `json:"entity_id"`
	EmittedAt time.Time     `json:"emitted_at"`
}
