package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"smilelink/internal/delivery/http/response"
	domainerrors "smilelink/internal/domain/errors"
	"smilelink/internal/infra/events"
	"smilelink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatusHandler serves the local observability endpoints: liveness, the
// dashboard aggregate, and the recent notification journal.
type StatusHandler struct {
	dashboard usecase.DashboardUsecase
	journal   *events.Journal
	logger    *slog.Logger
}

// NewStatusHandler is the constructor for StatusHandler.
func NewStatusHandler(dashboard usecase.DashboardUsecase, journal *events.Journal, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{
		dashboard: dashboard,
		journal:   journal,
		logger:    logger,
	}
}

func (h *StatusHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// KPIs recomputes the dashboard aggregate on every request; there is no
// cache to go stale.
func (h *StatusHandler) KPIs(c echo.Context) error {
	kpis, err := h.dashboard.GetKPIs(c.Request().Context())
	if err != nil {
		h.logger.Error("kpi aggregation failed", slog.Any("error", err))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() > 0 {
			return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
		}

		return response.Error(c, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "No se pudo conectar con el servidor", err.Error())
	}

	return response.Success(c, http.StatusOK, kpis, "")
}

func (h *StatusHandler) Events(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.journal.Recent(), "")
}
