package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rihlaty/travel-ops/database"
	"github.com/rihlaty/travel-ops/models"
)

type TourRequest struct {
	Name         string                    `json:"name" validate:"required"`
	Type         string                    `json:"type"`
	City         string                    `json:"city"`
	Description  string                    `json:"description"`
	Highlights   []string                  `json:"highlights"`
	Images       []models.Image            `json:"images"`
	Translations models.LocalizationBundle `json:"translations"`
}

func CreateTour(c *fiber.Ctx) error {
	var req TourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tour := models.Tour{
		Name:        req.Name,
		Type:        req.Type,
		City:        req.City,
		Description: req.Description,
		Highlights:  datatypes.NewJSONSlice(req.Highlights),
		Images:      datatypes.NewJSONSlice(req.Images),
	}
	if req.Translations != nil {
		tour.Translations = datatypes.NewJSONType(req.Translations)
	}
	if err := database.DB.Create(&tour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create tour"})
	}
	return c.Status(fiber.StatusCreated).JSON(tour)
}

func UpdateTour(c *fiber.Ctx) error {
	tourID, err := uuid.Parse(c.Params("tourId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tour id"})
	}

	var tour models.Tour
	if err := database.DB.First(&tour, "id = ?", tourID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tour not found"})
	}

	var req TourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tour.Name = req.Name
	tour.Type = req.Type
	tour.City = req.City
	tour.Description = req.Description
	tour.Highlights = datatypes.NewJSONSlice(req.Highlights)
	tour.Images = datatypes.NewJSONSlice(req.Images)
	if req.Translations != nil {
		tour.Translations = datatypes.NewJSONType(req.Translations)
	}

	if err := database.DB.Save(&tour).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update tour"})
	}
	return c.JSON(tour)
}

func ListTours(c *fiber.Ctx) error {
	query := database.DB.Order("name ASC")
	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}

	var tours []models.Tour
	if err := query.Limit(500).Find(&tours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list tours"})
	}
	return c.JSON(tours)
}

func GetTour(c *fiber.Ctx) error {
	tourID, err := uuid.Parse(c.Params("tourId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tour id"})
	}

	var tour models.Tour
	if err := database.DB.First(&tour, "id = ?", tourID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tour not found"})
	}
	return c.JSON(tour)
}
