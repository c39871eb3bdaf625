// Package server exposes the aggregation and search functions as a local
// JSON API for the browser dashboard. The dataset is loaded once at startup
// and held immutably; every request recomputes its answer from the
// in-memory arrays, which is cheap enough to run per interaction.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/instalens/instalens/internal/dataset"
)

// Server serves the dashboard API over a loaded dataset.
type Server struct {
	ds  *dataset.Dataset
	log zerolog.Logger
}

// New creates a Server over an already-loaded dataset.
func New(ds *dataset.Dataset, log zerolog.Logger) *Server {
	return &Server{ds: ds, log: log}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/api/status", s.handleStatus)
	r.Get("/api/analytics/{kind}", s.handleAnalytics)

	r.Route("/api/search", func(r chi.Router) {
		r.Get("/users", s.handleSearchUsers)
		r.Get("/photos", s.handleSearchPhotos)
		r.Get("/comments", s.handleSearchComments)
		r.Get("/tags", s.handleSearchTags)
	})

	return r
}

// requestLogger logs one line per request with status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
