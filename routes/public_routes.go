package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rihlaty/travel-ops/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/locales/:lang", handlers.GetLocale)
}
