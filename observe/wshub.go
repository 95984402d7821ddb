package observe

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/sepro-lang/sepro/core"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type wsMessage struct {
	Kind    string             `json:"kind"`
	Step    int                `json:"step"`
	Values  map[string]float64 `json:"values,omitempty"`
	Name    string             `json:"name,omitempty"`
	Message string             `json:"message,omitempty"`
}

// WSHub is a core.Logger that fans probe records and notifications
// out to every connected websocket client. Engine.step calls it
// synchronously between steps, so a write here never races a read of
// the same Engine's state elsewhere; subscribers only ever see a
// fully-settled step.
type WSHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]string
}

func NewWSHub() *WSHub {
	return &WSHub{clients: make(map[*websocket.Conn]string)}
}

// ServeHTTP upgrades the request to a websocket and registers the
// connection as a subscriber, under a fresh id used only to
// correlate log lines about that connection, until it disconnects.
func (h *WSHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("observe: wshub upgrade error: %v", err)
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.clients[conn] = id
	h.mu.Unlock()
	log.Printf("observe: wshub subscriber %s connected", id)

	go h.drain(conn)
}

// drain discards anything a client sends; this hub is broadcast-only.
func (h *WSHub) drain(conn *websocket.Conn) {
	defer h.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *WSHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	id := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	log.Printf("observe: wshub subscriber %s disconnected", id)
	conn.Close()
}

func (h *WSHub) broadcast(msg wsMessage) {
	js, err := json.Marshal(msg)
	if err != nil {
		log.Printf("observe: wshub marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, js); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *WSHub) LoggingWillStart(measures []*core.Measure, steps int) {}

func (h *WSHub) LoggingDidEnd(steps int) {}

func (h *WSHub) LogRecord(step int, values map[core.Symbol]float64) {
	vs := make(map[string]float64, len(values))
	for sym, v := range values {
		vs[sym.String()] = v
	}
	h.broadcast(wsMessage{Kind: "record", Step: step, Values: vs})
}

func (h *WSHub) LogNotification(step int, name core.Symbol) {
	h.broadcast(wsMessage{Kind: "notification", Step: step, Name: name.String()})
}

func (h *WSHub) LogWarning(step int, message string) {
	h.broadcast(wsMessage{Kind: "warning", Step: step, Message: message})
}
