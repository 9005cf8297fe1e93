// Package server exposes the notification dispatcher over HTTP.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"seyren-notifier/domain/errors"
	"seyren-notifier/domain/interfaces"
)

const (
	defaultDeliveryLimit = 50
	maxDeliveryLimit     = 500
	maxRequestBodyBytes  = 1 << 20
)

// Options configure the HTTP server.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server serves the notification API, health checks and metrics.
type Server struct {
	opts       Options
	dispatch   interfaces.DispatchNotificationUseCase
	deliveries interfaces.DeliveryRepository
	gatherer   prometheus.Gatherer
	logger     interfaces.Logger
	router     chi.Router
}

// New creates a server. deliveries may be nil when no database is configured.
func New(
	opts Options,
	dispatch interfaces.DispatchNotificationUseCase,
	deliveries interfaces.DeliveryRepository,
	gatherer prometheus.Gatherer,
	logger interfaces.Logger,
) *Server {
	s := &Server{
		opts:       opts,
		dispatch:   dispatch,
		deliveries: deliveries,
		gatherer:   gatherer,
		logger:     logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/notifications", s.notify)
		r.Get("/checks/{checkID}/deliveries", s.listDeliveries)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.opts.Addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "seyren-notifier"})
}

func (s *Server) notify(w http.ResponseWriter, r *http.Request) {
	var params interfaces.DispatchParams
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := s.dispatch.Execute(r.Context(), params)
	if err != nil {
		var validationErr *errors.ValidationError
		if stderrors.As(err, &validationErr) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  validationErr.Error(),
				"fields": validationErr.Fields,
			})
			return
		}

		s.logger.Error("Dispatch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) listDeliveries(w http.ResponseWriter, r *http.Request) {
	if s.deliveries == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "delivery history is not configured"})
		return
	}

	limit := defaultDeliveryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxDeliveryLimit {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be between 1 and 500"})
			return
		}
		limit = parsed
	}

	deliveries, err := s.deliveries.FindByCheck(r.Context(), chi.URLParam(r, "checkID"), limit)
	if err != nil {
		s.logger.Error("Failed to load deliveries", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"deliveries": deliveries})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
