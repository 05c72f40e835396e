package ws

import (
	"encoding/json"
	"log"

	"decoyauction/internal/domain"
)

// Hub fans order-insert events out to connected admin sockets. The payload
// is the bare inserted row; subscribers reconcile joined fields with a full
// re-fetch.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	events     chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan []byte, 16),
	}
}

// Run owns the client set; all registration and delivery happens on this
// goroutine, so no locking is needed.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.events:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// slow consumer; drop it rather than block the hub
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

type orderEvent struct {
	Type  string       `json:"type"`
	Order domain.Order `json:"order"`
}

// PublishOrder broadcasts a newly inserted order to every subscriber.
func (h *Hub) PublishOrder(o domain.Order) {
	b, err := json.Marshal(orderEvent{Type: "order.insert", Order: o})
	if err != nil {
		log.Printf("[ws] marshal order event: %v", err)
		return
	}
	h.events <- b
}

func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unregister <- c }
