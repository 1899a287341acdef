package ws

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// EventHub is the realtime notifier: every connected observer receives every
// emitted event. Delivery is best-effort, at-most-once; observers that
// connect later see nothing emitted before.
type EventHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan envelope
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients: make(map[*websocket.Conn]bool),
		// buffered so Emit never blocks a request path
		broadcast:  make(chan envelope, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run owns the client set; start it once in a goroutine.
func (h *EventHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}

		case env := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(env); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

// Emit implements services.Notifier. Fire-and-forget: if the buffer is full
// the event is dropped rather than blocking the mutation that produced it.
func (h *EventHub) Emit(event string, payload any) {
	select {
	case h.broadcast <- envelope{Event: event, Payload: payload}:
	default:
		log.Printf("ws: broadcast buffer full, dropping %s", event)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/events
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.drain(conn)
}

// drain discards client frames (the event stream is one-way) and unregisters
// on disconnect.
func (h *EventHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
