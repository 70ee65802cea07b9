package mock

import (
	"context"
	"io"
	"path"

	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/service"
)

type uploader struct {
	store *Store
}

// NewUploader returns the in-memory upload implementation. Content is
// drained and discarded; only the synthesized path is stored, mirroring what
// the UI needs to render.
func NewUploader(store *Store) service.Uploader {
	return &uploader{store: store}
}

func (u *uploader) UploadAvatar(ctx context.Context, childID, filename string, content io.Reader) (string, error) {
	if err := u.store.wait(ctx); err != nil {
		return "", err
	}
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	url := "/uploads/" + childID + "_avatar" + path.Ext(filename)
	for i := range u.store.children {
		if u.store.children[i].ID == childID {
			u.store.children[i].AvatarURL = &url

			return url, nil
		}
	}

	return "", domainerrors.ErrChildNotFound
}

func (u *uploader) UploadEvidence(ctx context.Context, deliveryID, filename string, content io.Reader) (string, error) {
	if err := u.store.wait(ctx); err != nil {
		return "", err
	}
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	url := "/uploads/" + deliveryID + "_proof" + path.Ext(filename)
	for i := range u.store.deliveries {
		if u.store.deliveries[i].ID == deliveryID {
			u.store.deliveries[i].EvidencePhotoPath = &url

			return url, nil
		}
	}

	return "", domainerrors.ErrDeliveryNotFound
}
