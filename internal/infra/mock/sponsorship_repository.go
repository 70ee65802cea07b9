package mock

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type sponsorshipRepository struct {
	store *Store
}

// NewSponsorshipRepository returns the seeded in-memory implementation.
func NewSponsorshipRepository(store *Store) repository.SponsorshipRepository {
	return &sponsorshipRepository{store: store}
}

func (r *sponsorshipRepository) List(ctx context.Context) ([]entity.Sponsorship, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]entity.Sponsorship, len(r.store.sponsorships))
	copy(out, r.store.sponsorships)

	return out, nil
}

func (r *sponsorshipRepository) FindByID(ctx context.Context, id string) (*entity.Sponsorship, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.sponsorships {
		if r.store.sponsorships[i].ID == id {
			sponsorship := r.store.sponsorships[i]

			return &sponsorship, nil
		}
	}

	return nil, domainerrors.ErrSponsorshipNotFound
}

func (r *sponsorshipRepository) Create(ctx context.Context, sponsorship entity.Sponsorship) (*entity.Sponsorship, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if sponsorship.ID == "" {
		ids := make([]string, 0, len(r.store.sponsorships))
		for i := range r.store.sponsorships {
			ids = append(ids, r.store.sponsorships[i].ID)
		}
		sponsorship.ID = nextID("AP", ids)
	}
	if sponsorship.State == "" {
		sponsorship.State = entity.RegistrationActive
	}
	if sponsorship.DeliveryIDs == nil {
		sponsorship.DeliveryIDs = []string{}
	}

	r.store.sponsorships = append(r.store.sponsorships, sponsorship)

	return &sponsorship, nil
}

func (r *sponsorshipRepository) Update(ctx context.Context, id string, upd entity.SponsorshipUpdate) (*entity.Sponsorship, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.sponsorships {
		if r.store.sponsorships[i].ID != id {
			continue
		}

		applySponsorshipUpdate(&r.store.sponsorships[i], upd)
		sponsorship := r.store.sponsorships[i]

		return &sponsorship, nil
	}

	return nil, domainerrors.ErrSponsorshipNotFound
}

func (r *sponsorshipRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.sponsorships {
		if r.store.sponsorships[i].ID == id {
			r.store.sponsorships = append(r.store.sponsorships[:i], r.store.sponsorships[i+1:]...)

			return nil
		}
	}

	return domainerrors.ErrSponsorshipNotFound
}

func applySponsorshipUpdate(sponsorship *entity.Sponsorship, upd entity.SponsorshipUpdate) {
	if upd.EndDate != nil {
		sponsorship.EndDate = upd.EndDate
	}
	if upd.State != nil {
		sponsorship.State = *upd.State
	}
	if upd.DeliveryIDs != nil {
		sponsorship.DeliveryIDs = *upd.DeliveryIDs
	}
	if upd.DeliveryLat != nil {
		sponsorship.DeliveryLat = upd.DeliveryLat
	}
	if upd.DeliveryLng != nil {
		sponsorship.DeliveryLng = upd.DeliveryLng
	}
	if upd.DeliveryAddress != nil {
		sponsorship.DeliveryAddress = upd.DeliveryAddress
	}
	if upd.DeliveryPointID != nil {
		sponsorship.DeliveryPointID = upd.DeliveryPointID
	}
}
