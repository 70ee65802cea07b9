package impl

import (
	"context"
	"log/slog"
	"sort"

	"smilelink/internal/domain/entity"
	"smilelink/internal/domain/repository"
	"smilelink/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

type deliveryPointService struct {
	pointRepo repository.DeliveryPointRepository
	logger    *slog.Logger
}

// NewDeliveryPointService is the constructor for deliveryPointService.
func NewDeliveryPointService(
	pointRepo repository.DeliveryPointRepository,
	logger *slog.Logger,
) usecase.DeliveryPointUsecase {
	return &deliveryPointService{
		pointRepo: pointRepo,
		logger:    logger,
	}
}

func (srv *deliveryPointService) ListDeliveryPoints(ctx context.Context) ([]entity.DeliveryPoint, error) {
	points, err := srv.pointRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list delivery points")
	}

	return points, nil
}

func (srv *deliveryPointService) GetDeliveryPoint(ctx context.Context, id string) (*entity.DeliveryPoint, error) {
	point, err := srv.pointRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get delivery point %s", id)
	}

	return point, nil
}

func (srv *deliveryPointService) ActiveDeliveryPoints(ctx context.Context) ([]entity.DeliveryPoint, error) {
	points, err := srv.pointRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list delivery points")
	}

	active := make([]entity.DeliveryPoint, 0, len(points))
	for i := range points {
		if points[i].State == entity.PointActive {
			active = append(active, points[i])
		}
	}

	return active, nil
}

// NearestDeliveryPoints sorts the active points by great-circle distance from
// the given position. limit <= 0 means no cap.
func (srv *deliveryPointService) NearestDeliveryPoints(ctx context.Context, lat, lng float64, limit int) ([]entity.DeliveryPoint, error) {
	active, err := srv.ActiveDeliveryPoints(ctx)
	if err != nil {
		return nil, err
	}

	origin := orb.Point{lng, lat}
	sort.SliceStable(active, func(i, j int) bool {
		di := geo.Distance(origin, orb.Point{active[i].Lng, active[i].Lat})
		dj := geo.Distance(origin, orb.Point{active[j].Lng, active[j].Lat})

		return di < dj
	})

	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}

	return active, nil
}
