// Package spectate streams read-only game snapshots to websocket clients.
// The game loop publishes a value per frame; each connected client gets
// it as a JSON text message. Slow clients miss frames instead of stalling
// the game.
package spectate

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/dronemania/internal/logging"
)

const (
	sendBuffer   = 4
	writeTimeout = 2 * time.Second
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans snapshots out to connected spectators.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	latest   any
	dropped  uint64
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewHub creates a hub. A nil logger discards log output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Publish records v as the latest snapshot and queues it for every
// client. v must not be modified afterwards.
func (h *Hub) Publish(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = v
	if len(h.clients) == 0 {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("marshal snapshot", "error", err)
		return
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped++
		}
	}
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many frames were skipped for slow clients.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Latest returns the most recent snapshot encoded as JSON, or nil if
// nothing was published yet.
func (h *Hub) Latest() ([]byte, error) {
	h.mu.Lock()
	v := h.latest
	h.mu.Unlock()

	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// ServeHTTP upgrades the request to a websocket and streams snapshots
// until the client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if data, err := h.Latest(); err == nil && data != nil {
		c.send <- data
	}
	h.register(c)
	h.logger.Info("spectator connected", "remote", r.RemoteAddr)

	done := make(chan struct{})
	go h.writeLoop(c, done)

	// Spectators are read-only; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.unregister(c)
	close(done)
	conn.Close()
	h.logger.Info("spectator disconnected", "remote", r.RemoteAddr)
}

func (h *Hub) writeLoop(c *client, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.conn.Close()
				return
			}
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "game closed"),
			time.Now().Add(time.Second))
		c.conn.Close()
	}
}
