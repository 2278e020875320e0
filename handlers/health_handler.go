package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
	logger  *slog.Logger
}

// NewHealthHandler accepts a nil db for the in-memory storage driver.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, timeout: 2 * time.Second, logger: logger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	response := jsonResponse{"status": "ok", "database": "ok"}

	if h.db == nil {
		response["database"] = "memory"
	} else {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			status = http.StatusServiceUnavailable
			response["status"] = "unavailable"
			response["database"] = "unreachable"
		}
	}

	if err := writeJSON(w, status, response, nil); err != nil {
		h.logger.Error("failed to write JSON response", slog.Any("error", err))
	}
}
