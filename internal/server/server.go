// Package server exposes the task store over an HTTP JSON API and serves the
// browser UI.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/jacksmith/todo/internal/logging"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/jacksmith/todo/internal/web"
)

const (
	// TodosPath is the API route for the task list.
	TodosPath = "/api/todos"
	// todoAliasPath serves the same handler as TodosPath.
	todoAliasPath = "/api/todo"

	maxBodySize     = 1 << 20 // 1MB
	shutdownTimeout = 5 * time.Second
)

// todoMethods are the methods allowed on the task routes, in Allow header order.
var todoMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// Server is the todo HTTP server.
type Server struct {
	store  ops.Store
	logger *log.Logger
	router *gin.Engine
	allow  map[string]string // path -> Allow header value
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for request and lifecycle logs.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server backed by store.
func New(store ops.Store, opts ...Option) *Server {
	s := &Server{
		store:  store,
		logger: logging.Discard(),
		allow:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), requestLogger(s.logger))
	router.NoMethod(s.handleMethodNotAllowed)
	router.NoRoute(s.handleNoRoute)
	s.router = router

	// Web routes
	s.handle(http.MethodGet, "/", s.handleIndex)
	router.StaticFS("/static", http.FS(web.Static()))
	s.handle(http.MethodGet, "/healthz", s.handleHealth)

	// API routes
	for _, path := range []string{TodosPath, todoAliasPath} {
		s.handle(http.MethodGet, path, s.handleList)
		s.handle(http.MethodPost, path, s.handleCreate)
		s.handle(http.MethodPut, path, s.handleUpdate)
		s.handle(http.MethodDelete, path, s.handleDelete)
	}

	return s
}

// handle registers a route and records its method for the Allow header.
func (s *Server) handle(method, path string, h gin.HandlerFunc) {
	s.router.Handle(method, path, h)
	if prev, ok := s.allow[path]; ok {
		s.allow[path] = prev + ", " + method
	} else {
		s.allow[path] = method
	}
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown", "err", err)
		}
	}()

	s.logger.Info("listening", "addr", ln.Addr().String())
	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		s.logger.Info("stopped")
		return nil
	}
	return err
}

// allowFor returns the Allow header value for path, or "".
func (s *Server) allowFor(path string) string {
	if v, ok := s.allow[path]; ok {
		return v
	}
	return s.allow[strings.TrimSuffix(path, "/")]
}
