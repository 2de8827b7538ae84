// Package realtime fans booking and channel events out to connected
// dashboard clients over websockets. One publish reaches every client
// currently connected; clients that join later miss the event.
package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Server-to-client event types.
const (
	EventNewBooking          = "new_booking"
	EventBookingStatusUpdate = "booking_status_update"
	EventWhatsAppStatus      = "whatsapp_status"
	EventWhatsAppQR          = "whatsapp_qr"
)

type wsEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type clientMessage struct {
	Type string `json:"type"`
	Room string `json:"room,omitempty"`
}

// client pairs a connection with its write guard. The websocket library
// allows only one concurrent writer per connection, and broadcasts from
// handler goroutines can race each other and the read-loop ack, so
// every write goes through writeMu.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) write(payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]bool)}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Broadcast publishes an event to all connected clients. Write failures
// are ignored; a broken client is dropped by its own read loop.
func (h *Hub) Broadcast(event string, data interface{}) {
	payload, err := json.Marshal(wsEvent{Type: event, Data: data})
	if err != nil {
		log.Printf("[REALTIME] marshal %s event failed: %v", event, err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.write(payload)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// ServeWS upgrades the request and pumps the read loop. The protocol is
// server push; the only client message handled is join_room, which is
// acknowledged (all events go to every client, rooms are nominal).
func (h *Hub) ServeWS(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	cl := &client{conn: ws}
	h.register(cl)
	log.Printf("[REALTIME] client connected (%d online)", h.ClientCount())

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			h.unregister(cl)
			_ = ws.Close()
			log.Printf("[REALTIME] client disconnected (%d online)", h.ClientCount())
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg.Type == "join_room" {
			ack, _ := json.Marshal(wsEvent{Type: "joined_room", Data: gin.H{"room": msg.Room}})
			_ = cl.write(ack)
		}
	}
}
