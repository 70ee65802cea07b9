package mock

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type childRepository struct {
	store *Store
}

// NewChildRepository returns the seeded in-memory implementation.
func NewChildRepository(store *Store) repository.ChildRepository {
	return &childRepository{store: store}
}

func (r *childRepository) List(ctx context.Context) ([]entity.Child, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]entity.Child, len(r.store.children))
	copy(out, r.store.children)

	return out, nil
}

func (r *childRepository) FindByID(ctx context.Context, id string) (*entity.Child, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.children {
		if r.store.children[i].ID == id {
			child := r.store.children[i]

			return &child, nil
		}
	}

	return nil, domainerrors.ErrChildNotFound
}

func (r *childRepository) Create(ctx context.Context, child entity.Child) (*entity.Child, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if child.ID == "" {
		ids := make([]string, 0, len(r.store.children))
		for i := range r.store.children {
			ids = append(ids, r.store.children[i].ID)
		}
		child.ID = nextID("N", ids)
	}
	if child.SponsorshipState == "" {
		child.SponsorshipState = entity.SponsorshipAvailable
	}

	r.store.children = append(r.store.children, child)

	return &child, nil
}

func (r *childRepository) Update(ctx context.Context, id string, upd entity.ChildUpdate) (*entity.Child, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.children {
		if r.store.children[i].ID != id {
			continue
		}

		applyChildUpdate(&r.store.children[i], upd)
		child := r.store.children[i]

		return &child, nil
	}

	return nil, domainerrors.ErrChildNotFound
}

func (r *childRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.children {
		if r.store.children[i].ID == id {
			r.store.children = append(r.store.children[:i], r.store.children[i+1:]...)

			return nil
		}
	}

	return domainerrors.ErrChildNotFound
}

// applyChildUpdate mutates only the fields supplied in upd.
func applyChildUpdate(child *entity.Child, upd entity.ChildUpdate) {
	if upd.Name != nil {
		child.Name = *upd.Name
	}
	if upd.Age != nil {
		child.Age = *upd.Age
	}
	if upd.Gender != nil {
		child.Gender = *upd.Gender
	}
	if upd.Description != nil {
		child.Description = *upd.Description
	}
	if upd.Needs != nil {
		child.Needs = *upd.Needs
	}
	if upd.CurrentSponsorID != nil {
		child.CurrentSponsorID = upd.CurrentSponsorID
	}
	if upd.SponsorshipState != nil {
		child.SponsorshipState = *upd.SponsorshipState
	}
	if upd.SponsorshipDate != nil {
		child.SponsorshipDate = upd.SponsorshipDate
	}
	if upd.AvatarURL != nil {
		child.AvatarURL = upd.AvatarURL
	}
}
