// Package repository defines the interfaces for the data-access layer.
// Each entity has exactly one interface with two implementations — the live
// REST client in internal/infra/api and the in-memory seed in
// internal/infra/mock — selected once at composition time. The application
// layer depends on these contracts, never on a concrete data source.
package repository

import (
	"context"

	"smilelink/internal/domain/entity"
)

// ChildRepository defines the standard operations over children.
// Missing records surface as domainerrors.ErrChildNotFound; live
// implementations preserve the raw backend status on every failure.
type ChildRepository interface {
	// List retrieves the full collection. There is no pagination contract;
	// correctness assumes the collection fits in one response.
	List(ctx context.Context) ([]entity.Child, error)

	// FindByID retrieves a single child by its opaque identifier.
	FindByID(ctx context.Context, id string) (*entity.Child, error)

	// Create persists a new child and returns the canonical record with the
	// assigned id.
	Create(ctx context.Context, child entity.Child) (*entity.Child, error)

	// Update applies a partial update; fields not set in upd stay untouched.
	Update(ctx context.Context, id string, upd entity.ChildUpdate) (*entity.Child, error)

	// Delete removes the record. Admin surface only; the mobile client never
	// hard-deletes.
	Delete(ctx context.Context, id string) error
}
