package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/validation"
)

// maxRequestBytes caps request bodies, imports included
const maxRequestBytes = 8 << 20

// ValidationErrorResponse lists the rejected fields by JSON name
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decodeRequest reads a strict JSON body into T and runs struct validation.
// On failure the response is already written and ok is false.
func decodeRequest[T any](w http.ResponseWriter, r *http.Request, action string) (req T, ok bool) {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		log.Warn("Undecodable request body", "action", action, "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
		} else {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		}
		return req, false
	}

	if err := validation.Get().ValidateStruct(req); err != nil {
		log.Warn("Request failed validation", "action", action, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validation.FormatValidationError(err),
		})
		return req, false
	}
	return req, true
}

// queryOr returns the named query parameter, or fallback when it is blank
func queryOr(r *http.Request, name, fallback string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return fallback
}

// logRequestFields records handler-specific request attributes at debug level
func logRequestFields(r *http.Request, action string, kv ...any) {
	logger.FromContext(r.Context()).Debug("Request details", append([]any{"action", action}, kv...)...)
}
