// Package server wires HTTP handlers into a chi router for the Talkeu
// application via routing helpers.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter configures and returns the application router. It applies CORS
// for the configured origins and mounts the health check, stats, and
// WebSocket endpoints.
func NewRouter(hub *Hub) http.Handler {
	cfg := currentConfig()

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", HealthHandler)
	r.Get("/stats", hub.HandleStats)
	r.Get("/ws", hub.ServeWS)
	return r
}
