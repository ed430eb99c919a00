package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rihlaty/travel-ops/handlers"
	"github.com/rihlaty/travel-ops/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/auth/login", handlers.Login)
	api.Post("/auth/staff", middleware.Protected(), middleware.AdminRequired(), handlers.CreateStaff)
}
