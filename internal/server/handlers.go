// Package server exposes HTTP handlers, including WebSocket upgrades, health
// checks, and room/user statistics.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     checkOrigin,
}

// ServeWS handles WebSocket upgrade requests. It upgrades the HTTP
// connection, creates a Client with a fresh connection ID, and hands it to
// the hub, which launches the read/write pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. WebSocket endpoint only accepts GET requests.", http.StatusMethodNotAllowed)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := NewClient(conn, h, r.RemoteAddr)
	h.register <- client
}

// HandleStats reports the current number of rooms and users as JSON. Intended
// for diagnostics and admin dashboards, not for clients.
func (h *Hub) HandleStats(w http.ResponseWriter, _ *http.Request) {
	registry := h.coordinator.Registry()
	stats := struct {
		Rooms int `json:"rooms"`
		Users int `json:"users"`
	}{
		Rooms: registry.RoomCount(),
		Users: registry.UserCount(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		log.Printf("Error writing stats response: %v", err)
	}
}

// HealthHandler provides a simple health check endpoint that returns server status.
// It responds with a plain text message indicating the server is running.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = fmt.Fprintf(w, "Talkeu chat server is running!")
}
