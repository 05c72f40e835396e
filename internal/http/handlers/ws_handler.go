package handlers

import (
	"decoyauction/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type WSHandler struct {
	Hub *ws.Hub
}

// Upgrade rejects plain HTTP requests to the feed endpoint.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Feed serves the order-insert subscription for the admin board. The client
// is unregistered from the hub when the connection drops, whichever side
// closes first.
func (h *WSHandler) Feed() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		ws.NewClient(h.Hub, conn).Serve()
	})
}
