// Package server exposes the landing page over HTTP. Each visit gets its own
// page view whose state is changed by commands posted from the browser or
// sent over a websocket.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sellonet/sellonet-web/internal/content"
	"github.com/sellonet/sellonet-web/internal/page"
	"github.com/sellonet/sellonet-web/internal/views"
)

// Config holds server configuration.
type Config struct {
	Port        int
	AllowAll    bool // allow all CORS origins (dev mode)
	Title       string
	Description string
}

// Server is the landing page server.
type Server struct {
	cfg        Config
	content    *content.Registry
	views      *views.Registry
	renderer   *page.Renderer
	now        func() time.Time
	router     chi.Router
	httpServer *http.Server
}

// New creates a new server with all dependencies.
func New(cfg Config, reg *content.Registry, viewRegistry *views.Registry, renderer *page.Renderer) *Server {
	s := &Server{
		cfg:      cfg,
		content:  reg,
		views:    viewRegistry,
		renderer: renderer,
		now:      time.Now,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Websockets outlive the request timeout.
	r.Get("/views/{id}/ws", s.handleSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Health check
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Handle("/static/*", http.StripPrefix("/static/", staticHandler()))

		r.Get("/", s.handleNewView)
		r.Get("/views/{id}", s.handleView)
		r.Post("/views/{id}/commands", s.handleCommand)

		r.Get("/api/content", s.handleContent)
		r.Get("/api/views/{id}/state", s.handleState)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("sellonet server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// pageOptions returns the live rendering options for a view.
func (s *Server) pageOptions(viewID string) page.Options {
	return page.Options{
		Title:       s.cfg.Title,
		Description: s.cfg.Description,
		CommandURL:  "/views/" + viewID + "/commands",
		SocketURL:   "/views/" + viewID + "/ws",
		Year:        s.now().Year(),
	}
}
