package live

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Message is the envelope pushed to dashboard clients: a view name plus the
// freshly derived snapshot for it.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Hub fans derived-view snapshots out to every connected websocket client.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Broadcast sends a typed message to all connected clients. Clients whose
// write fails are dropped.
func (h *Hub) Broadcast(messageType string, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) == 0 {
		return
	}

	msg := Message{Type: messageType, Payload: payload}

	for client := range h.clients {
		if err := client.WriteJSON(msg); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// ClientCount reports how many dashboard clients are connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Handle upgrades the connection and keeps it registered until the client
// goes away.
func (h *Hub) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not upgrade connection"})
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
