package mock

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type sponsorRepository struct {
	store *Store
}

// NewSponsorRepository returns the seeded in-memory implementation.
func NewSponsorRepository(store *Store) repository.SponsorRepository {
	return &sponsorRepository{store: store}
}

func (r *sponsorRepository) List(ctx context.Context) ([]entity.Sponsor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]entity.Sponsor, len(r.store.sponsors))
	copy(out, r.store.sponsors)

	return out, nil
}

func (r *sponsorRepository) FindByID(ctx context.Context, id string) (*entity.Sponsor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.sponsors {
		if r.store.sponsors[i].ID == id {
			sponsor := r.store.sponsors[i]

			return &sponsor, nil
		}
	}

	return nil, domainerrors.ErrSponsorNotFound
}

func (r *sponsorRepository) Create(ctx context.Context, sponsor entity.Sponsor) (*entity.Sponsor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if sponsor.ID == "" {
		ids := make([]string, 0, len(r.store.sponsors))
		for i := range r.store.sponsors {
			ids = append(ids, r.store.sponsors[i].ID)
		}
		sponsor.ID = nextID("P", ids)
	}
	if sponsor.SponsorshipHistoryIDs == nil {
		sponsor.SponsorshipHistoryIDs = []string{}
	}

	r.store.sponsors = append(r.store.sponsors, sponsor)

	return &sponsor, nil
}

func (r *sponsorRepository) Update(ctx context.Context, id string, upd entity.SponsorUpdate) (*entity.Sponsor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.sponsors {
		if r.store.sponsors[i].ID != id {
			continue
		}

		applySponsorUpdate(&r.store.sponsors[i], upd)
		sponsor := r.store.sponsors[i]

		return &sponsor, nil
	}

	return nil, domainerrors.ErrSponsorNotFound
}

func (r *sponsorRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.sponsors {
		if r.store.sponsors[i].ID == id {
			r.store.sponsors = append(r.store.sponsors[:i], r.store.sponsors[i+1:]...)

			return nil
		}
	}

	return domainerrors.ErrSponsorNotFound
}

func applySponsorUpdate(sponsor *entity.Sponsor, upd entity.SponsorUpdate) {
	if upd.Name != nil {
		sponsor.Name = *upd.Name
	}
	if upd.Email != nil {
		sponsor.Email = *upd.Email
	}
	if upd.Address != nil {
		sponsor.Address = *upd.Address
	}
	if upd.Phone != nil {
		sponsor.Phone = *upd.Phone
	}
	if upd.PhotoURL != nil {
		sponsor.PhotoURL = upd.PhotoURL
	}
	if upd.GoogleAuthID != nil {
		sponsor.GoogleAuthID = upd.GoogleAuthID
	}
	if upd.SponsorshipHistoryIDs != nil {
		sponsor.SponsorshipHistoryIDs = *upd.SponsorshipHistoryIDs
	}
}
