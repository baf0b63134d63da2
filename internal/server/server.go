// Package server exposes the preset catalog and shot analysis over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/shotgraph/internal/domain"
	"github.com/hammamikhairi/shotgraph/internal/engine"
	"github.com/hammamikhairi/shotgraph/internal/logger"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

const shutdownTimeout = 5 * time.Second

// Server serves the HTTP API on top of an Engine.
type Server struct {
	eng *engine.Engine
	log *logger.Logger
}

// New creates a Server.
func New(eng *engine.Engine, log *logger.Logger) *Server {
	return &Server{eng: eng, log: log.Named("http")}
}

// Handler returns an http.Handler for the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// GET /ping - health check
	mux.HandleFunc("GET /ping", s.handlePing)

	// GET /presets - list presets, or search them with ?q=
	mux.HandleFunc("GET /presets", s.handleListPresets)

	// GET /presets/{name} - raw preset document fields
	mux.HandleFunc("GET /presets/{name}", s.handleGetPreset)

	// GET /presets/{name}/profile - analyzed traces
	mux.HandleFunc("GET /presets/{name}/profile", s.handleGetProfile)

	return s.withRequestID(mux)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		s.log.Debug("%s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong"))
}

// handleListPresets handles GET /presets.
func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	var (
		list []domain.PresetSummary
		err  error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		list, err = s.eng.SearchPresets(r.Context(), q)
	} else {
		list, err = s.eng.ListPresets(r.Context())
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []domain.PresetSummary{}
	}
	s.writeJSON(w, http.StatusOK, list)
}

// handleGetPreset handles GET /presets/{name}.
func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	p, err := s.eng.GetPreset(r.Context(), r.PathValue("name"))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// handleGetProfile handles GET /presets/{name}/profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.eng.Analyze(r.Context(), r.PathValue("name"))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, status, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

func statusFor(err error) int {
	switch {
	case engine.IsUnknownPreset(err):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Warn("request failed: %v", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response: %v", err)
	}
}
