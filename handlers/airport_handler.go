package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rihlaty/travel-ops/database"
	"github.com/rihlaty/travel-ops/models"
)

type AirportRequest struct {
	Name    string `json:"name" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country"`
}

func CreateAirport(c *fiber.Ctx) error {
	var req AirportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	airport := models.Airport{Name: req.Name, City: req.City, Country: req.Country}
	if err := database.DB.Create(&airport).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create airport"})
	}
	return c.Status(fiber.StatusCreated).JSON(airport)
}

func UpdateAirport(c *fiber.Ctx) error {
	airportID, err := uuid.Parse(c.Params("airportId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid airport id"})
	}

	var airport models.Airport
	if err := database.DB.First(&airport, "id = ?", airportID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Airport not found"})
	}

	var req AirportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	airport.Name = req.Name
	airport.City = req.City
	airport.Country = req.Country

	if err := database.DB.Save(&airport).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update airport"})
	}
	return c.JSON(airport)
}

func ListAirports(c *fiber.Ctx) error {
	query := database.DB.Order("name ASC")
	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}

	var airports []models.Airport
	if err := query.Find(&airports).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list airports"})
	}
	return c.JSON(airports)
}
