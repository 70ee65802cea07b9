package api

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type sponsorshipRepository struct {
	client *Client
}

// NewSponsorshipRepository returns the live implementation backed by
// /apadrinamientos/.
func NewSponsorshipRepository(client *Client) repository.SponsorshipRepository {
	return &sponsorshipRepository{client: client}
}

func (r *sponsorshipRepository) List(ctx context.Context) ([]entity.Sponsorship, error) {
	var sponsorships []entity.Sponsorship
	if err := r.client.getJSON(ctx, "/apadrinamientos/", &sponsorships, nil); err != nil {
		return nil, err
	}

	return sponsorships, nil
}

func (r *sponsorshipRepository) FindByID(ctx context.Context, id string) (*entity.Sponsorship, error) {
	var sponsorship entity.Sponsorship
	if err := r.client.getJSON(ctx, "/apadrinamientos/"+id+"/", &sponsorship, domainerrors.ErrSponsorshipNotFound); err != nil {
		return nil, err
	}

	return &sponsorship, nil
}

func (r *sponsorshipRepository) Create(ctx context.Context, sponsorship entity.Sponsorship) (*entity.Sponsorship, error) {
	var created entity.Sponsorship
	if err := r.client.postJSON(ctx, "/apadrinamientos/", sponsorship, &created, nil); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *sponsorshipRepository) Update(ctx context.Context, id string, upd entity.SponsorshipUpdate) (*entity.Sponsorship, error) {
	var updated entity.Sponsorship
	if err := r.client.patchJSON(ctx, "/apadrinamientos/"+id+"/", upd, &updated, domainerrors.ErrSponsorshipNotFound); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *sponsorshipRepository) Delete(ctx context.Context, id string) error {
	return r.client.deleteJSON(ctx, "/apadrinamientos/"+id+"/", domainerrors.ErrSponsorshipNotFound)
}
