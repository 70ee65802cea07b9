package usecase

import (
	"context"

	"smilelink/internal/domain/entity"
)

// NotifierUsecase runs the change-detection cycles behind user-facing
// notifications. The implementation owns the only mutable seen-set state;
// callers just schedule cycles.
type NotifierUsecase interface {
	// Baseline seeds the seen sets from the current collections without
	// emitting, so a fresh start does not replay history as "new".
	Baseline(ctx context.Context) error

	// Poll runs one cycle: re-fetch each category, diff against the seen
	// sets, and return the events for ids not seen before. A category whose
	// fetch fails is skipped and its seen set left untouched; the other
	// categories still run. Disabled categories are fetched and tracked but
	// emit nothing.
	Poll(ctx context.Context) ([]entity.Event, error)
}
