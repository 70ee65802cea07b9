package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/domain/service"

	"github.com/pkg/errors"
)

type uploader struct {
	client *Client
}

// NewUploader returns the live multipart upload implementation.
func NewUploader(client *Client) service.Uploader {
	return &uploader{client: client}
}

func (u *uploader) UploadAvatar(ctx context.Context, childID, filename string, content io.Reader) (string, error) {
	return u.upload(ctx, "/ninos/"+childID+"/upload_avatar/", filename, content,
		"avatar_url", domainerrors.ErrChildNotFound)
}

func (u *uploader) UploadEvidence(ctx context.Context, deliveryID, filename string, content io.Reader) (string, error) {
	return u.upload(ctx, "/entregas/"+deliveryID+"/upload_evidence/", filename, content,
		"evidence_url", domainerrors.ErrDeliveryNotFound)
}

// upload posts a single "file" part and extracts the named URL field from the
// response, normalized for reachability.
func (u *uploader) upload(ctx context.Context, path, filename string, content io.Reader, urlField string, notFound domainerrors.AppError) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Wrap(err, "create form file")
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", errors.Wrap(err, "copy upload content")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "finish multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.client.baseURL+path, &buf)
	if err != nil {
		return "", errors.Wrap(err, "build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.httpClient.Do(req)
	if err != nil {
		u.client.logger.Warn("upload failed",
			slog.String("path", path),
			slog.Any("error", err))

		return "", domainerrors.NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", u.client.statusError(resp, path, notFound)
	}

	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.Wrapf(err, "decode upload response for %s", path)
	}

	raw, ok := payload[urlField]
	if !ok || raw == "" {
		return "", domainerrors.ErrInternalError.WithDetails("upload response missing " + urlField)
	}

	return u.client.NormalizeAssetURL(raw), nil
}
