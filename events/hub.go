// Package events broadcasts order-status changes so every open storefront
// page — and other tabs via the shared local-store signal key — can refresh
// its order view.
package events

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/localstore"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SignalStore receives the cross-page storage signal.
type SignalStore interface {
	Put(key, value string) error
}

// Hub fans OrderStatusChange events out to websocket clients, in-process
// subscribers, and the local-store signal key.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	subs    []func(models.OrderStatusChange)
	signals SignalStore
}

func NewHub(signals SignalStore) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		signals: signals,
	}
}

// HandleWS upgrades the connection and keeps it registered until it closes.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

// Subscribe registers an in-process listener (the same-tab path of the
// storage event).
func (h *Hub) Subscribe(fn func(models.OrderStatusChange)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

// PublishOrderStatus delivers the event everywhere: signal key first, then
// websocket clients, then in-process subscribers.
func (h *Hub) PublishOrderStatus(ev models.OrderStatusChange) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	if h.signals != nil {
		if err := h.signals.Put(localstore.KeyOrderStatusSignal, string(data)); err != nil {
			log.Printf("⚠️ Failed to write order status signal: %v", err)
		}
	}

	h.mu.Lock()
	subs := make([]func(models.OrderStatusChange), len(h.subs))
	copy(subs, h.subs)
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.clients, conn)
		}
	}
	h.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}
