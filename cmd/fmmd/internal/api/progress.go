package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/ccurtis0/fast-marching-method/grid"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var progressUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// freezeMessage is broadcast once per fmm.WithOnFreeze invocation while a
// field's compute is in flight.
type freezeMessage struct {
	Index    []int   `json:"index"`
	Distance float64 `json:"distance"`
}

// progressHub fans a single field's freeze events out to every WebSocket
// currently watching it, and closes them all once the compute finishes.
type progressHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	closed  bool
}

func newProgressHub() *progressHub {
	return &progressHub{clients: make(map[*websocket.Conn]bool)}
}

func (h *progressHub) register(conn *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[conn] = true
	wsConnectionsActive.Inc()
	return true
}

func (h *progressHub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		wsConnectionsActive.Dec()
	}
}

// broadcast is passed as the onFreeze callback to fmm.UnsignedDistance /
// fmm.SignedDistance.
func (h *progressHub) broadcast(idx grid.Idx, distance float64) {
	msg, err := json.Marshal(freezeMessage{Index: []int(idx), Distance: distance})
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			conn.Close()
			delete(h.clients, conn)
			wsConnectionsActive.Dec()
		}
	}
}

func (h *progressHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
		wsConnectionsActive.Dec()
	}
}

// handleProgress upgrades to a WebSocket and streams freeze events for the
// named field's in-flight compute. If the field has already finished (or
// never existed), the connection is upgraded and immediately closed.
func (h *handlers) handleProgress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	conn, err := progressUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("fmmd: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	hub, ok := h.store.progressHubFor(id)
	if !ok || !hub.register(conn) {
		return
	}
	defer hub.unregister(conn)

	// Drain and discard client messages; this is a push-only feed. Exits
	// once the client disconnects or the hub closes the connection.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
