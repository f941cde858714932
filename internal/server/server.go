// Package server exposes the distance engine over a local HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/derivative-programming/pagenav/pkg/nav"
	"github.com/derivative-programming/pagenav/pkg/observability"
	"github.com/derivative-programming/pagenav/pkg/pipeline"
	"github.com/derivative-programming/pagenav/pkg/usage"
)

// Server serves navigation analysis over HTTP. Results are computed
// through the pipeline runner, so repeated requests for an unchanged
// model are served from cache.
type Server struct {
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger
	addr   string
}

// Config holds server configuration.
type Config struct {
	Runner  *pipeline.Runner
	Options pipeline.Options
	Logger  *log.Logger
	Addr    string
}

// New creates a server. A nil logger falls back to the default logger.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:8321"
	}
	return &Server{
		runner: cfg.Runner,
		opts:   cfg.Options,
		logger: logger,
		addr:   addr,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/pages", s.handlePages)
		r.Get("/distances", s.handleDistances)
		r.Get("/paths", s.handlePath)
		r.Post("/usage", s.handleUsage)
	})
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// logRequests emits one structured log line per request and feeds the
// HTTP observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed)
	})
}

// ============================================================================
// Handlers
// ============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// pageInfo is the wire shape for a single page.
type pageInfo struct {
	Name    string   `json:"name"`
	Role    string   `json:"role,omitempty"`
	Targets []string `json:"targets,omitempty"`
}

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	result, err := s.run(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	pages := make([]pageInfo, 0, result.Graph.PageCount())
	for _, name := range result.Graph.Pages() {
		pages = append(pages, pageInfo{
			Name:    name,
			Role:    result.Graph.Role(name),
			Targets: result.Graph.Neighbors(name),
		})
	}
	writeJSON(w, map[string]any{"pages": pages})
}

func (s *Server) handleDistances(w http.ResponseWriter, r *http.Request) {
	if len(s.opts.Starts) == 0 {
		writeError(w, http.StatusUnprocessableEntity, nav.ErrNoStartPages.Error())
		return
	}

	result, err := s.run(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, nav.ErrNoStartPages) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}

	skipped := make([]string, 0, len(result.Batch.Skipped))
	for _, issue := range result.Batch.Skipped {
		skipped = append(skipped, issue.String())
	}
	writeJSON(w, map[string]any{
		"graphHash": result.GraphHash,
		"records":   result.Batch.Records,
		"skipped":   skipped,
		"cached":    result.CacheInfo.DistancesHit,
	})
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to query parameters are required")
		return
	}

	result, err := s.run(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	path, _ := s.runner.PathWithCacheInfo(r.Context(), result.Graph, result.GraphHash, from, to)
	writeJSON(w, map[string]any{
		"from":     from,
		"to":       to,
		"path":     path,
		"distance": result.Graph.Distance(from, to),
	})
}

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	var journeys []usage.Journey
	if err := json.NewDecoder(r.Body).Decode(&journeys); err != nil {
		writeError(w, http.StatusBadRequest, "invalid journey list: "+err.Error())
		return
	}
	journeys = usage.AssignIDs(journeys)

	result, err := s.run(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, usage.Compute(result.Graph, journeys))
}

// run executes the pipeline for the configured model. With no start
// pages configured the extract and build stages still run, so pages
// and path queries keep working.
func (s *Server) run(ctx context.Context) (*pipeline.Result, error) {
	opts := s.opts
	if len(opts.Starts) > 0 {
		return s.runner.Execute(ctx, opts)
	}

	pages, hit, err := s.runner.ExtractWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result := &pipeline.Result{
		Pages: pages,
		Graph: s.runner.BuildGraph(ctx, pages),
		Batch: &nav.BatchResult{},
	}
	result.CacheInfo.ExtractHit = hit
	result.GraphHash = pipeline.PagesHash(pages)
	return result, nil
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
