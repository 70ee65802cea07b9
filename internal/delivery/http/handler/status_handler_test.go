package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"smilelink/config"
	"smilelink/internal/domain/entity"
	"smilelink/internal/infra/auth"
	"smilelink/internal/infra/events"
	"smilelink/internal/infra/mock"
	"smilelink/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*StatusHandler, *events.Journal) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Notifications.EventBufferSize = 10

	store := mock.NewStore(cfg, auth.NewBcryptHasher())
	logger := slog.New(slog.DiscardHandler)
	journal := events.NewJournal(cfg, logger)

	dashboard := impl.NewDashboardService(
		mock.NewChildRepository(store),
		mock.NewSponsorRepository(store),
		mock.NewSponsorshipRepository(store),
		mock.NewDeliveryRepository(store),
		mock.NewGiftRequestRepository(store),
	)

	return NewStatusHandler(dashboard, journal, logger), journal
}

func doRequest(t *testing.T, handlerFunc echo.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handlerFunc(e.NewContext(req, rec)))

	return rec
}

func TestStatusHandler_Health(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.Health, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestStatusHandler_KPIs(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(t, h.KPIs, "/kpis")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool          `json:"success"`
		Data    entity.KPISet `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 4, body.Data.TotalChildren)
	assert.Equal(t, body.Data.TotalChildren, body.Data.AvailableChildren+body.Data.SponsoredChildren)
}

func TestStatusHandler_Events(t *testing.T) {
	h, journal := newTestHandler(t)

	journal.Emit(entity.Event{Title: "Nuevo apadrinamiento", EntityID: "AP006"})

	rec := doRequest(t, h.Events, "/events")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []entity.Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "AP006", body.Data[0].EntityID)
}
