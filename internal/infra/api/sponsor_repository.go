package api

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type sponsorRepository struct {
	client *Client
}

// NewSponsorRepository returns the live implementation backed by /padrinos/.
func NewSponsorRepository(client *Client) repository.SponsorRepository {
	return &sponsorRepository{client: client}
}

func (r *sponsorRepository) List(ctx context.Context) ([]entity.Sponsor, error) {
	var sponsors []entity.Sponsor
	if err := r.client.getJSON(ctx, "/padrinos/", &sponsors, nil); err != nil {
		return nil, err
	}

	for i := range sponsors {
		normalizeSponsor(r.client, &sponsors[i])
	}

	return sponsors, nil
}

func (r *sponsorRepository) FindByID(ctx context.Context, id string) (*entity.Sponsor, error) {
	var sponsor entity.Sponsor
	if err := r.client.getJSON(ctx, "/padrinos/"+id+"/", &sponsor, domainerrors.ErrSponsorNotFound); err != nil {
		return nil, err
	}

	normalizeSponsor(r.client, &sponsor)

	return &sponsor, nil
}

func (r *sponsorRepository) Create(ctx context.Context, sponsor entity.Sponsor) (*entity.Sponsor, error) {
	var created entity.Sponsor
	if err := r.client.postJSON(ctx, "/padrinos/", sponsor, &created, nil); err != nil {
		return nil, err
	}

	normalizeSponsor(r.client, &created)

	return &created, nil
}

func (r *sponsorRepository) Update(ctx context.Context, id string, upd entity.SponsorUpdate) (*entity.Sponsor, error) {
	var updated entity.Sponsor
	if err := r.client.patchJSON(ctx, "/padrinos/"+id+"/", upd, &updated, domainerrors.ErrSponsorNotFound); err != nil {
		return nil, err
	}

	normalizeSponsor(r.client, &updated)

	return &updated, nil
}

func (r *sponsorRepository) Delete(ctx context.Context, id string) error {
	return r.client.deleteJSON(ctx, "/padrinos/"+id+"/", domainerrors.ErrSponsorNotFound)
}

func normalizeSponsor(client *Client, sponsor *entity.Sponsor) {
	if sponsor.PhotoURL != nil {
		fixed := client.NormalizeAssetURL(*sponsor.PhotoURL)
		sponsor.PhotoURL = &fixed
	}
}
