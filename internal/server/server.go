package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/HealthQuest_Go/internal/game"
	"github.com/osse101/HealthQuest_Go/internal/handler"
	"github.com/osse101/HealthQuest_Go/internal/logger"
	"github.com/osse101/HealthQuest_Go/internal/metrics"
)

// Options holds the server settings that come from configuration
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

// Server serves the game API over HTTP
type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer wires the middleware chain and routes. Middleware runs in the
// order registered, outermost first.
func NewServer(opts Options, svc game.Service, checker handler.HealthChecker) *Server {
	detector := NewSuspiciousActivityDetector()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(checker))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", handler.HandleGetState(svc))
		r.Post("/meals", handler.HandleRecordMeal(svc))
		r.Post("/health/sync", handler.HandleSyncHealth(svc))
		r.Post("/explore", handler.HandleExplore(svc))
		r.Post("/day/close", handler.HandleCloseDay(svc))
		r.Put("/settings", handler.HandleUpdateSettings(svc))

		r.Get("/history", handler.HandleListHistory(svc))
		r.Get("/history/{date}", handler.HandleGetDailyLog(svc))

		r.Get("/storage/usage", handler.HandleStorageUsage(svc))
		r.Get("/export", handler.HandleExport(svc))
		r.Post("/export/folder", handler.HandleExportFolder(svc))
		r.Post("/import", handler.HandleImport(svc))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		router: r,
	}
}

// Handler exposes the router for in-process tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// isProbe reports paths polled by orchestrators and scrapers
func isProbe(path string) bool {
	switch path {
	case "/healthz", "/readyz", "/metrics":
		return true
	}
	return false
}

// loggingMiddleware tags the request with an id, reusing X-Request-ID when
// the caller sent one, and logs start and completion. Probes are not logged.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isProbe(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), id)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, id)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		if log.Enabled(ctx, slog.LevelDebug) {
			log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))
		}

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", elapsed.Milliseconds())
	})
}

// redactHeaders copies h with credential values masked
func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for _, k := range []string{HeaderAPIKey, HeaderAuthorization, "Cookie"} {
		if out.Get(k) != "" {
			out.Set(k, RedactedValue)
		}
	}
	return out
}

// Start blocks serving until Stop is called
func (s *Server) Start() error {
	slog.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
