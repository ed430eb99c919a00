package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/rihlaty/travel-ops/handlers"
)

func WebsocketRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// authentication happens on the first frame inside the handler;
	// browser clients cannot attach an Authorization header here
	app.Get("/ws/events", websocket.New(handlers.ServeEvents))
}
