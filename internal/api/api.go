// Package api exposes the stacking operations over HTTP.
//
// Two JSON endpoints mirror the CLI commands: POST /v1/drop settles
// objects downward, POST /v1/stack arranges them into a column. Both
// accept a list of named boxes and return a plan with per-object
// translation deltas. GET /healthz reports liveness.
//
// Handlers only call pure kernel functions on request-scoped data, so
// the server needs no locking.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/stacker/pkg/errors"
)

const shutdownTimeout = 5 * time.Second

// Server hosts the stacking endpoints.
type Server struct {
	logger *log.Logger
	router chi.Router
}

// New creates a Server with all routes registered.
func New(logger *log.Logger) *Server {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/drop", s.handleDrop)
		r.Post("/stack", s.handleStack)
	})
	s.router = r

	return s
}

// Handler returns the root handler, for mounting or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully with a short drain timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("Listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("Shutting down")
	return srv.Shutdown(shutdownCtx)
}

// requestLogger tags each request with a short id, echoes it in the
// X-Request-ID header, and logs one line on completion.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()[:8]

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Request-ID", id)
		next.ServeHTTP(ww, r)

		s.logger.Info("Request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	s.writeJSON(w, statusFor(code), errorResponse{
		Error: errors.UserMessage(err),
		Code:  code,
	})
}

// statusFor maps error codes to HTTP status. Validation failures are
// the client's fault; a too-small batch is well-formed but cannot be
// processed.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidAxis, errors.ErrCodeInvalidScene,
		errors.ErrCodeObjectNotFound, errors.ErrCodeFileNotFound:
		return http.StatusBadRequest
	case errors.ErrCodeTooFewObjects:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
