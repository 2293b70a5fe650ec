package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/HealthQuest_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

// HealthResponse is the body of the probe endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker is anything readiness depends on; the state store in practice
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// HandleHealthz answers as long as the process can serve HTTP
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz fails while the storage directory cannot be written
func HandleReadyz(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		err := checker.CheckHealth(ctx)
		if err == nil {
			respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
			return
		}

		logger.FromContext(ctx).Error("Readiness check failed", "error", err)
		w.Header().Set("Retry-After", "5")
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:  "unavailable",
			Message: "storage unavailable",
		})
	}
}
