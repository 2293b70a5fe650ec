package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON encodes payload before touching the response so an encoding
// failure can still be reported as a 500
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("Client went away mid-response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and answers with the mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceError(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "status", status)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgCorruptRecordError  = "The state record could not be read."
	ErrMsgUnsupportedSchema   = "The state record was written by a newer version."
	ErrMsgResourceNotFoundErr = "Resource not found."
	ErrMsgAuthorizationError  = "Health data access was denied."
	ErrMsgUnavailableError    = "Health data is not available yet. Please try again later."
	ErrMsgStorageError        = "Storage error occurred. Please try again."
)

// mapServiceError maps domain errors to an HTTP status and a user-facing message.
// Internal causes are never echoed to the client.
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrUnsupportedSchema):
		return http.StatusBadRequest, ErrMsgUnsupportedSchema
	case errors.Is(err, domain.ErrDeserialization):
		return http.StatusBadRequest, ErrMsgCorruptRecordError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFoundErr
	case errors.Is(err, domain.ErrAuthorization):
		return http.StatusForbidden, ErrMsgAuthorizationError
	case errors.Is(err, domain.ErrDataUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrIO):
		return http.StatusInternalServerError, ErrMsgStorageError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
