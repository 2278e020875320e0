package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Dosada05/cricket-tournament/services"
)

type ExportHandler struct {
	exportService services.ExportService
	logger        *slog.Logger
}

func NewExportHandler(s services.ExportService, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{exportService: s, logger: logger}
}

func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.exportService.Export(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrExportDisabled) {
			failureResponse(w, h.logger, http.StatusServiceUnavailable, "Failed to export snapshot: "+err.Error())
			return
		}
		h.logger.Error("snapshot export failed", slog.Any("error", err))
		failureResponse(w, h.logger, http.StatusInternalServerError, "Failed to export snapshot: "+err.Error())
		return
	}

	response := jsonResponse{
		"success":     true,
		"message":     "Snapshot exported successfully",
		"key":         result.Key,
		"url":         result.URL,
		"records":     result.Records,
		"exported_at": result.Exported,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.logger.Error("failed to write JSON response", slog.Any("error", err))
	}
}
