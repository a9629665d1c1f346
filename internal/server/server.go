package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/JuhQ/e2e-playwright/internal/logger"
	"github.com/JuhQ/e2e-playwright/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

//go:embed public
var publicFS embed.FS

type Server struct {
	renderer *render.Renderer
	log      *zap.Logger
	router   *chi.Mux
	static   http.Handler
}

func NewServer(renderer *render.Renderer, log *zap.Logger) (*Server, error) {
	public, err := fs.Sub(publicFS, "public")
	if err != nil {
		return nil, fmt.Errorf("unable to open public assets: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.Middleware(log))
	router.Use(recoveryMiddleware(log))
	router.Use(corsMiddleware())

	s := &Server{
		renderer: renderer,
		log:      log,
		router:   router,
		static:   http.FileServer(http.FS(public)),
	}
	s.RegisterHandlers()
	return s, nil
}

func (s *Server) RegisterHandlers() {
	s.router.Post("/submit", s.SubmitHandler)
	s.router.Get("/*", s.static.ServeHTTP)
	s.router.Head("/*", s.static.ServeHTTP)
}

// Handler exposes the configured router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// StartServer listens on addr and serves until ctx is cancelled, then shuts
// down gracefully within shutdownTimeout.
func (s *Server) StartServer(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}

	port := ln.Addr().(*net.TCPAddr).Port
	s.log.Info(fmt.Sprintf("Server is running at http://localhost:%d", port), zap.Int("port", port))

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error serving: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error serving: %w", err)
	}
	return nil
}

func recoveryMiddleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error("Recovered from panic",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func corsMiddleware() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler
}
