package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"smilelink/config"
	"smilelink/internal/domain/entity"
	"smilelink/internal/domain/repository"
	"smilelink/internal/usecase"

	"github.com/google/uuid"
)

// notifierService watches the three collections for new ids. It is the single
// owner of the seen sets; nothing else mutates them.
type notifierService struct {
	sponsorshipRepo repository.SponsorshipRepository
	deliveryRepo    repository.DeliveryRepository
	requestRepo     repository.GiftRequestRepository
	prefsStore      repository.PrefsStore

	recencyWindow time.Duration
	now           func() time.Time
	logger        *slog.Logger

	seenSponsorships map[string]struct{}
	seenDeliveries   map[string]struct{}
	seenRequests     map[string]struct{}
}

// NewNotifierService is the constructor for notifierService. The returned
// value is not safe for concurrent Poll calls; the watcher serializes them.
func NewNotifierService(
	cfg *config.Config,
	sponsorshipRepo repository.SponsorshipRepository,
	deliveryRepo repository.DeliveryRepository,
	requestRepo repository.GiftRequestRepository,
	prefsStore repository.PrefsStore,
	logger *slog.Logger,
) usecase.NotifierUsecase {
	return &notifierService{
		sponsorshipRepo:  sponsorshipRepo,
		deliveryRepo:     deliveryRepo,
		requestRepo:      requestRepo,
		prefsStore:       prefsStore,
		recencyWindow:    cfg.Notifications.RecencyWindow,
		now:              time.Now,
		logger:           logger,
		seenSponsorships: map[string]struct{}{},
		seenDeliveries:   map[string]struct{}{},
		seenRequests:     map[string]struct{}{},
	}
}

func (srv *notifierService) Baseline(ctx context.Context) error {
	// A first Poll with emission suppressed: the seen sets fill, history does
	// not replay as new.
	_, err := srv.poll(ctx, false)

	return err
}

func (srv *notifierService) Poll(ctx context.Context) ([]entity.Event, error) {
	return srv.poll(ctx, true)
}

func (srv *notifierService) poll(ctx context.Context, emit bool) ([]entity.Event, error) {
	prefs := srv.prefsStore.Notifications()
	now := srv.now()

	var events []entity.Event

	// Each category fetches and diffs independently. A failed fetch leaves
	// that category's seen set untouched so its ids surface on the next
	// successful cycle instead of being lost.

	if sponsorships, err := srv.sponsorshipRepo.List(ctx); err != nil {
		srv.logger.Warn("sponsorship poll failed", slog.Any("error", err))
	} else {
		watched := make([]string, 0, len(sponsorships))
		recent := map[string]entity.Sponsorship{}
		for i := range sponsorships {
			sp := sponsorships[i]
			if !sp.StartedWithin(srv.recencyWindow, now) {
				continue
			}
			watched = append(watched, sp.ID)
			recent[sp.ID] = sp
		}

		newIDs := diffNewIDs(srv.seenSponsorships, watched)
		srv.seenSponsorships = toSet(watched)

		if emit && prefs.Enabled(entity.CategorySponsorships) {
			for _, id := range newIDs {
				sp := recent[id]
				events = append(events, entity.Event{
					ID:        uuid.New(),
					Category:  entity.CategorySponsorships,
					Level:     entity.LevelSuccess,
					Title:     "Nuevo apadrinamiento",
					Message:   fmt.Sprintf("El niño %s tiene un nuevo padrino", sp.ChildID),
					EntityID:  id,
					EmittedAt: now,
				})
			}
		}
	}

	if deliveries, err := srv.deliveryRepo.List(ctx); err != nil {
		srv.logger.Warn("delivery poll failed", slog.Any("error", err))
	} else {
		watched := make([]string, 0, len(deliveries))
		open := map[string]entity.Delivery{}
		pending := 0
		for i := range deliveries {
			d := deliveries[i]
			if !d.Open() {
				continue
			}
			pending++
			watched = append(watched, d.ID)
			open[d.ID] = d
		}

		newIDs := diffNewIDs(srv.seenDeliveries, watched)
		srv.seenDeliveries = toSet(watched)

		if emit && prefs.Enabled(entity.CategoryDeliveries) {
			for _, id := range newIDs {
				d := open[id]
				events = append(events, entity.Event{
					ID:        uuid.New(),
					Category:  entity.CategoryDeliveries,
					Level:     entity.LevelWarning,
					Title:     "Entrega pendiente",
					Message:   fmt.Sprintf("Entrega programada para el %s: %s", d.ScheduledDate, d.GiftDescription),
					EntityID:  id,
					EmittedAt: now,
				})
			}

			// Backlog reminder at every multiple of five open deliveries.
			if pending > 0 && pending%5 == 0 {
				events = append(events, entity.Event{
					ID:        uuid.New(),
					Category:  entity.CategoryDeliveries,
					Level:     entity.LevelInfo,
					Title:     "Entregas acumuladas",
					Message:   fmt.Sprintf("Hay %d entregas pendientes de atender", pending),
					EmittedAt: now,
				})
			}
		}
	}

	if requests, err := srv.requestRepo.List(ctx); err != nil {
		srv.logger.Warn("gift request poll failed", slog.Any("error", err))
	} else {
		watched := make([]string, 0, len(requests))
		openReqs := map[string]entity.GiftRequest{}
		for i := range requests {
			req := requests[i]
			if req.State != entity.RequestOpen {
				continue
			}
			watched = append(watched, req.ID)
			openReqs[req.ID] = req
		}

		newIDs := diffNewIDs(srv.seenRequests, watched)
		srv.seenRequests = toSet(watched)

		if emit && prefs.Enabled(entity.CategoryRequests) {
			for _, id := range newIDs {
				req := openReqs[id]
				events = append(events, entity.Event{
					ID:        uuid.New(),
					Category:  entity.CategoryRequests,
					Level:     entity.LevelInfo,
					Title:     "Nueva solicitud de regalo",
					Message:   fmt.Sprintf("El niño %s pidió: %s", req.ChildID, req.Description),
					EntityID:  id,
					EmittedAt: now,
				})
			}
		}
	}

	return events, nil
}

// diffNewIDs returns the ids in current that are absent from seen, preserving
// current's order. Pure function; neither argument is mutated.
func diffNewIDs(seen map[string]struct{}, current []string) []string {
	var fresh []string
	for _, id := range current {
		if _, ok := seen[id]; !ok {
			fresh = append(fresh, id)
		}
	}

	return fresh
}

// toSet builds a fresh set; the previous seen set is replaced, never merged,
// so ids that left the watched subset can notify again when they return.
func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
