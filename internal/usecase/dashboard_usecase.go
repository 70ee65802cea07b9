package usecase

import (
	"context"

	"smilelink/internal/domain/entity"
)

// DashboardUsecase aggregates the collections into the KPI record. Every call
// re-reads and re-counts in full; there is no incremental maintenance.
type DashboardUsecase interface {
	GetKPIs(ctx context.Context) (*entity.KPISet, error)
}
