package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smilelink/config"
	domainerrors "smilelink/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL, assetHost string) *Client {
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.Timeout = 5 * time.Second
	cfg.API.AssetHost = assetHost

	return NewClient(cfg, slog.Default())
}

func TestClient_TransportError(t *testing.T) {
	// Nothing listens here; the dial fails before any response.
	client := newTestClient("http://127.0.0.1:1/api", "")

	var out map[string]any
	err := client.getJSON(context.Background(), "/ninos/", &out, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 0, appErr.HTTPCode())
	assert.Equal(t, "TRANSPORT_FAILED", appErr.ErrorCode())
}

func TestClient_UnexpectedStatusPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	var out map[string]any
	err := client.getJSON(context.Background(), "/ninos/", &out, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, domainerrors.StatusOf(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "upstream down", appErr.Details())
}

func TestClient_NotFoundMapsToSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")

	var out map[string]any
	err := client.getJSON(context.Background(), "/ninos/N999/", &out, domainerrors.ErrChildNotFound)
	require.ErrorIs(t, err, domainerrors.ErrChildNotFound)
	assert.Equal(t, http.StatusNotFound, domainerrors.StatusOf(err))
}

func TestClient_NormalizeAssetURL(t *testing.T) {
	client := newTestClient("http://192.168.1.20:8000/api", "192.168.1.20")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "relative path gets server root",
			in:   "/media/avatars/n001.jpg",
			want: "http://192.168.1.20:8000/media/avatars/n001.jpg",
		},
		{
			name: "localhost rewritten to asset host",
			in:   "http://localhost:8000/media/x.jpg",
			want: "http://192.168.1.20:8000/media/x.jpg",
		},
		{
			name: "loopback ip rewritten",
			in:   "http://127.0.0.1:8000/media/x.jpg",
			want: "http://192.168.1.20:8000/media/x.jpg",
		},
		{
			name: "external url untouched",
			in:   "https://cdn.example.com/x.jpg",
			want: "https://cdn.example.com/x.jpg",
		},
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.NormalizeAssetURL(tt.in))
		})
	}
}

func TestClient_NormalizeAssetURL_NoAssetHost(t *testing.T) {
	client := newTestClient("http://localhost:8000/api", "")

	// Without a configured asset host, loopback URLs pass through.
	in := "http://localhost:8000/media/x.jpg"
	assert.Equal(t, in, client.NormalizeAssetURL(in))
}
