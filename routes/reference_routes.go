package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rihlaty/travel-ops/handlers"
	"github.com/rihlaty/travel-ops/middleware"
)

func ReferenceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	hotels := api.Group("/hotels", middleware.Protected())
	hotels.Get("", handlers.ListHotels)
	hotels.Get("/:hotelId", handlers.GetHotel)
	hotels.Post("", middleware.AdminRequired(), handlers.CreateHotel)
	hotels.Put("/:hotelId", middleware.AdminRequired(), handlers.UpdateHotel)

	tours := api.Group("/tours", middleware.Protected())
	tours.Get("", handlers.ListTours)
	tours.Get("/:tourId", handlers.GetTour)
	tours.Post("", middleware.AdminRequired(), handlers.CreateTour)
	tours.Put("/:tourId", middleware.AdminRequired(), handlers.UpdateTour)

	airports := api.Group("/airports", middleware.Protected())
	airports.Get("", handlers.ListAirports)
	airports.Post("", middleware.AdminRequired(), handlers.CreateAirport)
	airports.Put("/:airportId", middleware.AdminRequired(), handlers.UpdateAirport)
}
