package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// FeedFunc produces the feed for one request.
type FeedFunc func(r *http.Request) (model.Feed, error)

// Static always serves feed.
func Static(feed model.Feed) FeedFunc {
	return func(*http.Request) (model.Feed, error) {
		return feed, nil
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter returns a handler serving GET /transactions from source.
func NewRouter(source FeedFunc) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	r.Get("/transactions", func(w http.ResponseWriter, req *http.Request) {
		feed, err := source(req)
		if err != nil {
			slog.Warn("Fixture feed failed", "error", err, "request_id", middleware.GetReqID(req.Context()))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, feed)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Server is a loopback HTTP server for the demo command.
type Server struct {
	listener net.Listener
	srv      *http.Server
}

// Listen binds addr (use "127.0.0.1:0" for a free port).
func Listen(addr string, handler http.Handler) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return &Server{
		listener: ln,
		srv: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// URL is the base URL clients should use.
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String()
}

// Serve blocks until ctx is cancelled, then shuts the server down.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down fixture server: %w", err)
		}
		return nil
	}
}
