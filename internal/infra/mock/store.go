// Package mock implements the in-memory data source used when the backend is
// unavailable or the app runs in demo mode. One seeded Store backs every
// repository; CRUD mutates the shared slices under a single mutex, and an
// artificial latency makes loading states observable.
package mock

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"smilelink/config"
	"smilelink/internal/domain/entity"
	"smilelink/internal/domain/service"
)

// Store holds the seeded dataset. All repositories in this package share one
// instance; construct it once in cmd/.
type Store struct {
	mu      sync.Mutex
	latency time.Duration

	children     []entity.Child
	sponsors     []entity.Sponsor
	sponsorships []entity.Sponsorship
	deliveries   []entity.Delivery
	points       []entity.DeliveryPoint
	requests     []entity.GiftRequest

	hasher service.PasswordHasher
}

// NewStore seeds the dataset and hashes the demo passwords with the same
// hasher the live backend uses.
func NewStore(cfg *config.Config, hasher service.PasswordHasher) *Store {
	store := &Store{
		latency:      cfg.API.MockLatency,
		children:     seedChildren(),
		sponsors:     seedSponsors(hasher),
		sponsorships: seedSponsorships(),
		deliveries:   seedDeliveries(),
		points:       seedDeliveryPoints(),
		requests:     seedGiftRequests(),
		hasher:       hasher,
	}

	return store
}

// wait simulates network latency, honoring context cancellation.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// nextID synthesizes prefix + zero-padded next sequence number ("AP006").
// Not collision-safe across processes; the mock dataset lives in one.
func nextID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}

		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%03d", prefix, max+1)
}
