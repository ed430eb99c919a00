package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/rihlaty/travel-ops/configs"
	"github.com/rihlaty/travel-ops/database"
	"github.com/rihlaty/travel-ops/handlers"
	"github.com/rihlaty/travel-ops/itinerary"
	"github.com/rihlaty/travel-ops/jobs"
	"github.com/rihlaty/travel-ops/notifications"
	"github.com/rihlaty/travel-ops/routes"
	"github.com/rihlaty/travel-ops/services"
	"github.com/rihlaty/travel-ops/websocket"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	notifications.InitEmailService()

	dict := itinerary.LoadDictionary("locales")
	engine := itinerary.NewEngine(itinerary.EngineConfig{
		Bookings: services.GormBookingStore{},
		Hotels:   services.GormHotelStore{},
		Tours:    services.GormTourStore{},
		Airports: services.GormAirportStore{},
		Dict:     dict,
		Renderer: itinerary.NewChromeRenderer(itinerary.DefaultRenderTimeout),
		Brand:    config.Config("BRAND_NAME"),
		Contact: itinerary.ContactInfo{
			Phone:   config.Config("OFFICE_PHONE"),
			Email:   config.Config("OFFICE_EMAIL"),
			Address: config.Config("OFFICE_ADDRESS"),
		},
	})
	handlers.InitDocumentEngine(engine)

	c := cron.New()
	c.AddFunc("0 3 * * *", jobs.PurgeDeletedBookings)
	c.AddFunc("30 3 * * *", jobs.BackfillSnapshots)
	go c.Start()
	log.Println("✅ Maintenance jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Travel Ops",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Disposition, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Travel Ops API",
		})
	})

	routes.PublicRoutes(app)
	routes.AuthRoutes(app)
	routes.BookingRoutes(app)
	routes.ReferenceRoutes(app)
	routes.WebsocketRoutes(app)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
