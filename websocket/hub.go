package websocket

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Hub maintains the set of active clients and fans broadcast frames out to
// them. Every open connection receives every broadcast: the hub keeps no
// per-connection room subscriptions, room scoping is the receiving client's
// concern.
type Hub struct {
	// Registered clients, keyed by connection id
	clients map[string]*Client

	// Guards clients so ClientCount and the fan-out snapshot are safe
	mu sync.RWMutex

	// Outbound frames to deliver to every open connection
	broadcast chan []byte

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// NewHub creates a new hub instance. Callers own the instance and are
// expected to start Run in its own goroutine; there is no package-level hub.
func NewHub() *Hub {
	return &Hub{
		// Buffered: a producing read pump only blocks once fan-out falls
		// 256 frames behind.
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]*Client),
	}
}

// Run processes register, unregister and broadcast requests until the
// process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			h.mu.Unlock()
			log.Debug().Str("client_id", client.id).Msg("client registered")
		case client := <-h.unregister:
			h.removeClient(client)
		case frame := <-h.broadcast:
			h.fanOut(frame)
		}
	}
}

// Broadcast queues one frame for delivery to every currently open
// connection.
func (h *Hub) Broadcast(frame []byte) {
	h.broadcast <- frame
}

// ClientCount reports the number of currently open connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// fanOut attempts one send per open connection. A client that cannot accept
// the frame is evicted without aborting delivery to the rest.
func (h *Hub) fanOut(frame []byte) {
	h.mu.RLock()
	recipients := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		recipients = append(recipients, client)
	}
	h.mu.RUnlock()

	for _, client := range recipients {
		if !client.trySend(frame) {
			log.Warn().Str("client_id", client.id).Msg("send buffer full, evicting client")
			h.removeClient(client)
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.id]; ok {
		delete(h.clients, client.id)
		client.closeSend()
		log.Debug().Str("client_id", client.id).Msg("client unregistered")
	}
}
