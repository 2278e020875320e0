package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Dosada05/cricket-tournament/services"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1_048_576 // 1MB

// envelope is the uniform response body of every write operation.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

type jsonResponse map[string]any

func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBodyBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBodyBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err) // ошибка программиста: передан не указатель
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func writeEnvelope(w http.ResponseWriter, logger *slog.Logger, status int, env envelope) {
	if err := writeJSON(w, status, env, nil); err != nil {
		logger.Error("failed to write JSON response", slog.Any("error", err))
	}
}

func successResponse(w http.ResponseWriter, logger *slog.Logger, status int, message string, id *int64) {
	writeEnvelope(w, logger, status, envelope{Success: true, Message: message, ID: id})
}

func failureResponse(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeEnvelope(w, logger, status, envelope{Success: false, Message: message})
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.Error("internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	failureResponse(w, logger, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

// validationError rejects a request before it reaches the service. Its text is
// the cause alone, while errors.Is still matches services.ErrValidationFailed.
type validationError struct {
	cause error
}

func invalidRequest(cause error) error {
	return &validationError{cause: cause}
}

func (e *validationError) Error() string { return e.cause.Error() }

func (e *validationError) Unwrap() error { return e.cause }

func (e *validationError) Is(target error) bool {
	return target == services.ErrValidationFailed
}

// statusForWriteError maps a service error from a write operation onto an
// HTTP status. Not-found and persistence failures both surface as 500.
func statusForWriteError(err error) int {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrReferenceNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// getIDFromURL извлекает положительный числовой ID из URL.
func getIDFromURL(r *http.Request, paramName string) (int64, error) {
	idStr := chi.URLParam(r, paramName)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s in URL path", paramName)
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %q", paramName, idStr)
	}

	if id <= 0 {
		return 0, fmt.Errorf("invalid %s value: %d", paramName, id)
	}

	return id, nil
}
