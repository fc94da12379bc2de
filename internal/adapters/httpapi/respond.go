package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Tanay2920003/sitelink/internal/application"
	"github.com/Tanay2920003/sitelink/internal/domain"
)

// Error codes returned in the error envelope
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeInvalidFilename = "INVALID_FILENAME"
	CodeInvalidJSON     = "INVALID_JSON"
	CodeValidation      = "VALIDATION_FAILED"
	CodeAlreadyExists   = "ALREADY_EXISTS"
	CodeNotFound        = "NOT_FOUND"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// SuccessEnvelope wraps every successful response body
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope wraps every error response body
type ErrorEnvelope struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details []domain.Issue `json:"details,omitempty"`
}

// writeJSON writes payload with the given status code
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

func ok(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, SuccessEnvelope{Data: data})
}

func created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, SuccessEnvelope{Data: data})
}

func fail(w http.ResponseWriter, status int, code, message string, details ...domain.Issue) {
	writeJSON(w, status, ErrorEnvelope{Error: message, Code: code, Details: details})
}

// respondError maps repository and command errors onto HTTP statuses.
// Unknown errors are logged and hidden behind a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var schemaErr *domain.SchemaError
	var validationErr *application.ValidationError

	switch {
	case errors.As(err, &schemaErr):
		fail(w, http.StatusUnprocessableEntity, CodeValidation, err.Error(), schemaErr.Issues...)
	case errors.As(err, &validationErr):
		fail(w, http.StatusBadRequest, CodeBadRequest, validationErr.Message,
			domain.Issue{Field: validationErr.Field, Message: validationErr.Message})
	case errors.Is(err, domain.ErrInvalidFilename):
		fail(w, http.StatusBadRequest, CodeInvalidFilename, domain.ErrInvalidFilename.Error())
	case errors.Is(err, domain.ErrInvalidJSON):
		fail(w, http.StatusBadRequest, CodeInvalidJSON, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		fail(w, http.StatusConflict, CodeAlreadyExists, domain.ErrAlreadyExists.Error())
	case errors.Is(err, domain.ErrNotFound):
		fail(w, http.StatusNotFound, CodeNotFound, domain.ErrNotFound.Error())
	default:
		LoggerFrom(r.Context()).ErrorContext(r.Context(), "request failed", slog.Any("error", err))
		fail(w, http.StatusInternalServerError, CodeInternal, "an unexpected error occurred")
	}
}
