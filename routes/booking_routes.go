package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rihlaty/travel-ops/handlers"
	"github.com/rihlaty/travel-ops/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected(), middleware.AgentRequired())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Get("/:bookingId", handlers.GetBooking)
	booking.Put("/:bookingId", handlers.UpdateBooking)
	booking.Delete("/:bookingId", handlers.DeleteBooking)

	// the document endpoint runs the composition engine end to end
	booking.Get("/:bookingId/document", handlers.GetBookingDocument)

	admin := api.Group("/admin/bookings", middleware.Protected(), middleware.AdminRequired())
	admin.Get("", handlers.ListBookings)
}
