package eventbridge

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kingrea/sound-archive/internal/metrics"
	"github.com/kingrea/sound-archive/internal/session"
)

const streamWriteTimeout = 2 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
	HandshakeTimeout: 5 * time.Second,
	// Loopback only; browsers on other origins are still allowed to watch.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub keeps the latest session snapshot and fans it out to /stream clients.
type Hub struct {
	mu      sync.Mutex
	latest  session.Snapshot
	has     bool
	clients map[*websocket.Conn]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Publish stores snap as the latest state and broadcasts it.
func (h *Hub) Publish(snap session.Snapshot) {
	if h == nil {
		return
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = snap
	h.has = true
	metrics.SnapshotsPublishedTotal.Inc()
	for ws := range h.clients {
		if err := writeFrame(ws, b); err != nil {
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
	metrics.BridgeStreamClients.Set(float64(len(h.clients)))
}

// Latest returns the most recently published snapshot.
func (h *Hub) Latest() (session.Snapshot, bool) {
	if h == nil {
		return session.Snapshot{}, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest, h.has
}

// Count reports connected stream clients.
func (h *Hub) Count() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// join registers ws and sends it the current snapshot under the same lock
// Publish writes with, so frames never interleave.
func (h *Hub) join(ws *websocket.Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.has {
		b, err := json.Marshal(h.latest)
		if err != nil {
			return err
		}
		if err := writeFrame(ws, b); err != nil {
			return err
		}
	}
	h.clients[ws] = struct{}{}
	metrics.BridgeStreamClients.Set(float64(len(h.clients)))
	return nil
}

func (h *Hub) leave(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	metrics.BridgeStreamClients.Set(float64(len(h.clients)))
	h.mu.Unlock()
	_ = ws.Close()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.clients {
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(streamWriteTimeout))
		_ = ws.Close()
		delete(h.clients, ws)
	}
	metrics.BridgeStreamClients.Set(0)
}

func writeFrame(ws *websocket.Conn, b []byte) error {
	_ = ws.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	return ws.WriteMessage(websocket.TextMessage, b)
}
