// Package stream publishes watch cycles to websocket clients.
package stream

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/etnz/cryptfolio"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // read-only feed
	},
}

// Hub is a cryptfolio.Display that keeps the latest cycle and pushes it to
// every connected websocket client.
type Hub struct {
	mu      sync.Mutex
	latest  *cryptfolio.Cycle
	changed chan struct{} // closed and replaced on every publish
}

// NewHub returns a Hub with no cycle yet.
func NewHub() *Hub {
	return &Hub{changed: make(chan struct{})}
}

// Fetching is a no-op: clients only receive complete cycles.
func (h *Hub) Fetching() {}

// Render publishes the first cycle.
func (h *Hub) Render(c *cryptfolio.Cycle) { h.publish(c) }

// Update publishes a new cycle.
func (h *Hub) Update(c *cryptfolio.Cycle) { h.publish(c) }

func (h *Hub) publish(c *cryptfolio.Cycle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = c
	close(h.changed)
	h.changed = make(chan struct{})
}

// Latest returns the last published cycle, or nil, and a channel closed on the next publish.
func (h *Hub) Latest() (*cryptfolio.Cycle, <-chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest, h.changed
}

// ServeHTTP upgrades the connection to a websocket, then sends the latest
// cycle, if any, followed by every new one, until the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()
	log.Printf("client %s connected", r.RemoteAddr)

	// Clients never talk: reading only detects the close.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sent := 0
	for {
		c, changed := h.Latest()
		if c != nil && c.Seq != sent {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(c); err != nil {
				log.Println("write error:", err)
				return
			}
			sent = c.Seq
		}
		select {
		case <-changed:
		case <-gone:
			log.Printf("client %s disconnected", r.RemoteAddr)
			return
		case <-r.Context().Done():
			return
		}
	}
}
