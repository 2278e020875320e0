package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Dosada05/cricket-tournament/models"
	"github.com/Dosada05/cricket-tournament/services"
	"github.com/go-chi/chi/v5"
)

// CRUDHandler exposes one entity type over HTTP:
//
//	GET    /list
//	GET    /{id}
//	POST   /add
//	PUT    /update/{id}
//	DELETE /delete/{id}
type CRUDHandler[T models.Entity] struct {
	service   services.CRUDService[T]
	newEntity func() T
	logger    *slog.Logger
}

func NewCRUDHandler[T models.Entity](svc services.CRUDService[T], newEntity func() T, logger *slog.Logger) *CRUDHandler[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &CRUDHandler[T]{
		service:   svc,
		newEntity: newEntity,
		logger:    logger.With(slog.String("entity", string(svc.Kind()))),
	}
}

func (h *CRUDHandler[T]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/list", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/add", h.Create)
	r.Put("/update/{id}", h.Update)
	r.Delete("/delete/{id}", h.Delete)
	return r
}

func (h *CRUDHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	entities, err := h.service.List(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entities, nil); err != nil {
		h.logger.Error("failed to write JSON response", slog.Any("error", err))
	}
}

func (h *CRUDHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		failureResponse(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	entity, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		serverErrorResponse(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entity, nil); err != nil {
		h.logger.Error("failed to write JSON response", slog.Any("error", err))
	}
}

func (h *CRUDHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	entity, err := h.decode(w, r)
	if err != nil {
		h.writeFailure(w, "add", err)
		return
	}

	created, err := h.service.Create(r.Context(), entity)
	if err != nil {
		h.writeFailure(w, "add", err)
		return
	}

	id := created.GetID()
	successResponse(w, h.logger, http.StatusCreated, h.kindTitle()+" added successfully", &id)
}

func (h *CRUDHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		h.writeFailure(w, "update", invalidRequest(err))
		return
	}

	entity, err := h.decode(w, r)
	if err != nil {
		h.writeFailure(w, "update", err)
		return
	}

	if _, err := h.service.Update(r.Context(), id, entity); err != nil {
		h.writeFailure(w, "update", err)
		return
	}

	successResponse(w, h.logger, http.StatusOK, h.kindTitle()+" updated successfully", nil)
}

func (h *CRUDHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		h.writeFailure(w, "delete", invalidRequest(err))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeFailure(w, "delete", err)
		return
	}

	successResponse(w, h.logger, http.StatusOK, h.kindTitle()+" deleted successfully", nil)
}

// decode reads the request body, applies entity defaults and validates
// required fields. Every error it returns matches services.ErrValidationFailed.
func (h *CRUDHandler[T]) decode(w http.ResponseWriter, r *http.Request) (T, error) {
	var zero T
	entity := h.newEntity()
	if err := readJSON(w, r, entity); err != nil {
		return zero, invalidRequest(err)
	}

	entity.ApplyDefaults()
	if verrs := entity.Validate(); verrs != nil {
		return zero, invalidRequest(verrs)
	}
	return entity, nil
}

func (h *CRUDHandler[T]) writeFailure(w http.ResponseWriter, verb string, err error) {
	status := statusForWriteError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("write operation failed", slog.String("operation", verb), slog.Any("error", err))
	}
	failureResponse(w, h.logger, status, fmt.Sprintf("Failed to %s %s: %s", verb, h.service.Kind(), causeMessage(err)))
}

func (h *CRUDHandler[T]) kindTitle() string {
	return h.service.Kind().Title()
}

// causeMessage returns the client-facing reason of a failed write. Field
// errors are joined in field order.
func causeMessage(err error) string {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.Error()
	}
	return err.Error()
}
