package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HealthQuest_Go/internal/domain"
	"github.com/osse101/HealthQuest_Go/internal/game"
	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/storage"
)

// ExploreRequest chooses whether the avatar picked the healthy option
type ExploreRequest struct {
	ChoiceHealthy *bool `json:"choiceHealthy" validate:"required"`
}

// HistoryResponse lists the dates that have a stored daily log
type HistoryResponse struct {
	Dates []string `json:"dates"`
}

// UsageResponse is the storage usage with convenience units
type UsageResponse struct {
	domain.StorageUsage
	UsedMB  float64 `json:"usedMB"`
	Percent float64 `json:"percent"`
}

// ExportFolderResponse returns where an export was written
type ExportFolderResponse struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

// HandleGetState returns the current state
func HandleGetState(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.State(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get state", err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandleRecordMeal logs a meal for today
func HandleRecordMeal(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRequest[domain.MealInput](w, r, "record_meal")
		if !ok {
			return
		}
		logRequestFields(r, "record_meal",
			"has_text", req.Text != nil, "has_photo", req.PhotoRef != nil, "kcal_estimate", req.KcalEstimate)

		meal, err := svc.RecordMeal(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "Record meal", err)
			return
		}
		respondJSON(w, http.StatusCreated, meal)
	}
}

// HandleSyncHealth pulls today's stats from the health provider
func HandleSyncHealth(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.SyncHealth(r.Context())
		if err != nil {
			respondServiceError(w, r, "Sync health", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleExplore resolves one exploration
func HandleExplore(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRequest[ExploreRequest](w, r, "explore")
		if !ok {
			return
		}
		logRequestFields(r, "explore", "choice_healthy", *req.ChoiceHealthy)

		result, err := svc.Explore(r.Context(), *req.ChoiceHealthy)
		if err != nil {
			respondServiceError(w, r, "Explore", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleCloseDay closes the open day immediately
func HandleCloseDay(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.CloseDay(r.Context())
		if err != nil {
			respondServiceError(w, r, "Close day", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleListHistory lists the stored daily log dates, oldest first
func HandleListHistory(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dates, err := svc.ListDailyLogs(r.Context())
		if err != nil {
			respondServiceError(w, r, "List history", err)
			return
		}
		respondJSON(w, http.StatusOK, HistoryResponse{Dates: dates})
	}
}

// HandleGetDailyLog returns the daily log for the {date} URL parameter
func HandleGetDailyLog(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
			return
		}

		entry, err := svc.DailyLog(r.Context(), date)
		if err != nil {
			respondServiceError(w, r, "Get daily log", err)
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleUpdateSettings replaces the user settings
func HandleUpdateSettings(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeRequest[domain.Settings](w, r, "update_settings")
		if !ok {
			return
		}

		settings, err := svc.UpdateSettings(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "Update settings", err)
			return
		}
		respondJSON(w, http.StatusOK, settings)
	}
}

// HandleStorageUsage reports bytes used against the quota
func HandleStorageUsage(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		usage, err := svc.Usage(r.Context())
		if err != nil {
			respondServiceError(w, r, "Storage usage", err)
			return
		}

		resp := UsageResponse{
			StorageUsage: usage,
			UsedMB:       float64(usage.UsedBytes) / float64(domain.BytesPerMB),
		}
		if usage.QuotaBytes > 0 {
			resp.Percent = float64(usage.UsedBytes) / float64(usage.QuotaBytes) * 100
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleExport streams the canonical record as JSON or YAML (?format=)
func HandleExport(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := storage.ParseExportFormat(queryOr(r, "format", string(storage.FormatJSON)))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidFormat)
			return
		}

		var body []byte
		contentType := "application/json"
		if format == storage.FormatYAML {
			out, yerr := svc.ExportYAML(r.Context())
			body, err = []byte(out), yerr
			contentType = "application/yaml"
		} else {
			body, err = svc.ExportJSON(r.Context())
		}
		if err != nil {
			respondServiceError(w, r, "Export", err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="state.`+string(format)+`"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			logger.FromContext(r.Context()).Error("Failed to write export", "error", err)
		}
	}
}

// HandleExportFolder writes an export into the storage export folder (?format=)
func HandleExportFolder(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := storage.ParseExportFormat(queryOr(r, "format", string(storage.FormatJSON)))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidFormat)
			return
		}

		path, err := svc.ExportToFolder(r.Context(), format)
		if err != nil {
			respondServiceError(w, r, "Export to folder", err)
			return
		}
		respondJSON(w, http.StatusCreated, ExportFolderResponse{Path: path, Format: string(format)})
	}
}

// HandleImport replaces the canonical record with the request body
func HandleImport(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
				return
			}
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		state, err := svc.Import(r.Context(), data)
		if err != nil {
			respondServiceError(w, r, "Import", err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgStateImported, "bytes", len(data))
		respondJSON(w, http.StatusOK, state)
	}
}
