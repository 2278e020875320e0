package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/cricket-tournament/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
	logger           *slog.Logger
}

func NewDashboardHandler(s services.DashboardService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{dashboardService: s, logger: logger}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		h.logger.Error("failed to write JSON response", slog.Any("error", err))
	}
}
