// Package events keeps a bounded in-memory journal of emitted notifications
// so the status server can expose the recent history.
package events

import (
	"log/slog"
	"sync"

	"smilelink/config"
	"smilelink/internal/domain/entity"
)

// Journal is a fixed-capacity ring of events, oldest evicted first. It
// implements service.EventSink.
type Journal struct {
	mu       sync.Mutex
	capacity int
	buf      []entity.Event
	logger   *slog.Logger
}

// NewJournal is the constructor for Journal. Capacity comes from
// notifications.eventBufferSize.
func NewJournal(cfg *config.Config, logger *slog.Logger) *Journal {
	capacity := cfg.Notifications.EventBufferSize
	if capacity <= 0 {
		capacity = 1
	}

	return &Journal{
		capacity: capacity,
		buf:      make([]entity.Event, 0, capacity),
		logger:   logger,
	}
}

// Emit appends the event, evicting the oldest entry when full.
func (j *Journal) Emit(event entity.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.buf) == j.capacity {
		copy(j.buf, j.buf[1:])
		j.buf = j.buf[:len(j.buf)-1]
	}
	j.buf = append(j.buf, event)

	j.logger.Info("notification emitted",
		slog.String("category", string(event.Category)),
		slog.String("title", event.Title),
		slog.String("entityID", event.EntityID),
	)
}

// Recent returns a copy of the buffered events, oldest first.
func (j *Journal) Recent() []entity.Event {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]entity.Event, len(j.buf))
	copy(out, j.buf)

	return out
}
