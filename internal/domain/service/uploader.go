package service

import (
	"context"
	"io"

	"smilelink/internal/domain/entity"
)

// Uploader handles the two multipart upload endpoints. The returned URL is
// already normalized to be reachable from this client (relative paths
// prefixed, loopback hosts rewritten), so callers never touch raw backend
// paths.
type Uploader interface {
	// UploadAvatar posts an image for the child and returns the avatar URL.
	UploadAvatar(ctx context.Context, childID, filename string, content io.Reader) (string, error)

	// UploadEvidence posts a delivery evidence photo and returns its URL.
	UploadEvidence(ctx context.Context, deliveryID, filename string, content io.Reader) (string, error)
}

// EventSink receives poller emissions. Implementations fan out to the UI
// (toasts), logs, or the status endpoint's ring buffer.
type EventSink interface {
	Emit(event entity.Event)
}
