package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/buildmode/floorgrid/internal/protocol"
)

const writeTimeout = 3 * time.Second

// Hub fans patch envelopes out to every connected editor client and stamps
// them with a monotonic sequence. It is the only concurrent structure in
// the engine; everything per-floor is single-writer.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	sequence uint64
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish wraps the payload in a sequenced PatchEnvelope and broadcasts it.
// Dead connections are dropped on write failure.
func (h *Hub) Publish(eventType string, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sequence++
	message, err := json.Marshal(protocol.PatchEnvelope{
		Sequence: h.sequence,
		Type:     eventType,
		Payload:  payload,
	})
	if err != nil {
		return
	}

	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
}
