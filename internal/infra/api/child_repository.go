package api

import (
	"context"

	"smilelink/internal/domain/entity"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/repository"
)

type childRepository struct {
	client *Client
}

// NewChildRepository returns the live implementation backed by /ninos/.
func NewChildRepository(client *Client) repository.ChildRepository {
	return &childRepository{client: client}
}

func (r *childRepository) List(ctx context.Context) ([]entity.Child, error) {
	var children []entity.Child
	if err := r.client.getJSON(ctx, "/ninos/", &children, nil); err != nil {
		return nil, err
	}

	r.normalize(children)

	return children, nil
}

func (r *childRepository) FindByID(ctx context.Context, id string) (*entity.Child, error) {
	var child entity.Child
	if err := r.client.getJSON(ctx, "/ninos/"+id+"/", &child, domainerrors.ErrChildNotFound); err != nil {
		return nil, err
	}

	r.normalizeOne(&child)

	return &child, nil
}

func (r *childRepository) Create(ctx context.Context, child entity.Child) (*entity.Child, error) {
	var created entity.Child
	if err := r.client.postJSON(ctx, "/ninos/", child, &created, nil); err != nil {
		return nil, err
	}

	r.normalizeOne(&created)

	return &created, nil
}

func (r *childRepository) Update(ctx context.Context, id string, upd entity.ChildUpdate) (*entity.Child, error) {
	var updated entity.Child
	if err := r.client.patchJSON(ctx, "/ninos/"+id+"/", upd, &updated, domainerrors.ErrChildNotFound); err != nil {
		return nil, err
	}

	r.normalizeOne(&updated)

	return &updated, nil
}

func (r *childRepository) Delete(ctx context.Context, id string) error {
	return r.client.deleteJSON(ctx, "/ninos/"+id+"/", domainerrors.ErrChildNotFound)
}

func (r *childRepository) normalize(children []entity.Child) {
	for i := range children {
		r.normalizeOne(&children[i])
	}
}

// normalizeOne rewrites the avatar URL in place so every caller sees a
// reachable address.
func (r *childRepository) normalizeOne(child *entity.Child) {
	if child.AvatarURL != nil {
		fixed := r.client.NormalizeAssetURL(*child.AvatarURL)
		child.AvatarURL = &fixed
	}
}
