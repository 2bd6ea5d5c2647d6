package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/navedge/awareness"
	"github.com/katalvlaran/navedge/schema"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 8 << 20

// shutdownTimeout is how long Serve waits for in-flight requests after its
// context is cancelled.
const shutdownTimeout = 15 * time.Second

// Server serves one Analyzer.
type Server struct {
	server    *http.Server
	router    *mux.Router
	analyzer  *awareness.Analyzer
	validator *schema.Validator
}

// NewServer wires the routes for a. Nothing listens until ListenAndServe or Serve.
func NewServer(addr string, a *awareness.Analyzer, v *schema.Validator) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		analyzer:  a,
		validator: v,
	}
	s.registerRoutes()
	// analysis of a full-size document may take a while; reads are bounded by maxBodyBytes
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
		ErrorLog:          log.New(log.Writer(), "httpapi: ", log.LstdFlags),
	}

	return s
}

// Handler returns the route table, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled or the listener fails. See Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("httpapi: listen %s: %w", s.server.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled or serving fails.
// On cancellation in-flight requests get 15s to finish and Serve
// returns nil; a serving failure is returned wrapped.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.server.Serve(ln)
	}()
	log.Printf("httpapi: listening on %s", ln.Addr())

	select {
	case err := <-errc:
		return fmt.Errorf("httpapi: serve %s: %w", ln.Addr(), err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpapi: shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpapi: serve %s: %w", ln.Addr(), err)
	}
	log.Printf("httpapi: stopped")

	return nil
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/v1/schema", s.handleSchema).Methods("GET")
	s.router.HandleFunc("/v1/analyze", s.handleAnalyze).Methods("POST")
	s.router.HandleFunc("/v1/rebuild", s.handleRebuild).Methods("POST")
	s.router.HandleFunc("/v1/snapshots/latest", s.handleLatest).Methods("GET")
	s.router.HandleFunc("/v1/snapshots/{id}", s.handleSnapshot).Methods("GET")
}
