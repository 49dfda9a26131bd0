// Package web serves the icon gallery over HTTP: an embedded static UI
// backed by a small JSON API.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/icondeck"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// RefreshFunc re-runs icon discovery and returns the new collection with
// its manifest.
type RefreshFunc func(ctx context.Context) (icondeck.Collection, *icondeck.Index, error)

// Server hosts the gallery UI and JSON API.
type Server struct {
	addr    string
	repo    icondeck.Repo
	state   *State
	refresh RefreshFunc
	logger  *slog.Logger

	httpServer *http.Server
}

// NewServer builds a configured gallery server.
func NewServer(addr string, repo icondeck.Repo, state *State, refresh RefreshFunc, logger *slog.Logger) *Server {
	s := &Server{
		addr:    addr,
		repo:    repo,
		state:   state,
		refresh: refresh,
		logger:  logger,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the route table for the server. Exposed separately so
// tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.Handle("GET /static/", http.FileServer(http.FS(staticFS)))
	mux.HandleFunc("GET /api/icons", s.handleIcons)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/index", s.handleIndexDownload)
	mux.HandleFunc("POST /api/refresh", s.handleRefresh)
	return mux
}

// ListenAndServe runs the HTTP server until the context ends, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("gallery listening", "addr", s.addr)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
