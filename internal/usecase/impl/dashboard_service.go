package impl

import (
	"context"

	"smilelink/internal/domain/entity"
	"smilelink/internal/domain/repository"
	"smilelink/internal/usecase"

	"github.com/pkg/errors"
)

type dashboardService struct {
	childRepo       repository.ChildRepository
	sponsorRepo     repository.SponsorRepository
	sponsorshipRepo repository.SponsorshipRepository
	deliveryRepo    repository.DeliveryRepository
	requestRepo     repository.GiftRequestRepository
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	childRepo repository.ChildRepository,
	sponsorRepo repository.SponsorRepository,
	sponsorshipRepo repository.SponsorshipRepository,
	deliveryRepo repository.DeliveryRepository,
	requestRepo repository.GiftRequestRepository,
) usecase.DashboardUsecase {
	return &dashboardService{
		childRepo:       childRepo,
		sponsorRepo:     sponsorRepo,
		sponsorshipRepo: sponsorshipRepo,
		deliveryRepo:    deliveryRepo,
		requestRepo:     requestRepo,
	}
}

// GetKPIs re-fetches every collection and predicate-counts it. The same code
// path runs against both data sources, so mock and live dashboards agree by
// construction.
func (srv *dashboardService) GetKPIs(ctx context.Context) (*entity.KPISet, error) {
	children, err := srv.childRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list children")
	}

	sponsors, err := srv.sponsorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sponsors")
	}

	sponsorships, err := srv.sponsorshipRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sponsorships")
	}

	deliveries, err := srv.deliveryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list deliveries")
	}

	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list gift requests")
	}

	kpis := &entity.KPISet{
		TotalChildren: len(children),
		TotalSponsors: len(sponsors),
	}

	for i := range children {
		if children[i].Available() {
			kpis.AvailableChildren++
		} else {
			kpis.SponsoredChildren++
		}
	}

	// A sponsor counts as active while at least one of their sponsorships is.
	activeSponsors := map[string]struct{}{}
	for i := range sponsorships {
		if sponsorships[i].Active() {
			kpis.ActiveSponsorships++
			activeSponsors[sponsorships[i].SponsorID] = struct{}{}
		}
	}
	kpis.ActiveSponsors = len(activeSponsors)

	for i := range deliveries {
		if deliveries[i].Open() {
			kpis.PendingDeliveries++
		}
		if deliveries[i].State == entity.DeliveryDelivered {
			kpis.CompletedDeliveries++
		}
	}

	for i := range requests {
		if requests[i].State == entity.RequestOpen {
			kpis.OpenRequests++
		}
	}

	return kpis, nil
}
