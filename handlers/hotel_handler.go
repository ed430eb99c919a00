package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rihlaty/travel-ops/database"
	"github.com/rihlaty/travel-ops/models"
)

type HotelRequest struct {
	Name         string                    `json:"name" validate:"required"`
	City         string                    `json:"city" validate:"required"`
	Country      string                    `json:"country" validate:"required"`
	Stars        int                       `json:"stars" validate:"min=0,max=5"`
	Description  string                    `json:"description"`
	Images       []models.Image            `json:"images"`
	RoomTypes    []string                  `json:"room_types"`
	Translations models.LocalizationBundle `json:"translations"`
}

func CreateHotel(c *fiber.Ctx) error {
	var req HotelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hotel := models.Hotel{
		Name:        req.Name,
		City:        req.City,
		Country:     req.Country,
		Stars:       req.Stars,
		Description: req.Description,
		Images:      datatypes.NewJSONSlice(req.Images),
		RoomTypes:   datatypes.NewJSONSlice(req.RoomTypes),
	}
	if req.Translations != nil {
		hotel.Translations = datatypes.NewJSONType(req.Translations)
	}
	if err := database.DB.Create(&hotel).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create hotel"})
	}
	return c.Status(fiber.StatusCreated).JSON(hotel)
}

func UpdateHotel(c *fiber.Ctx) error {
	hotelID, err := uuid.Parse(c.Params("hotelId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid hotel id"})
	}

	var hotel models.Hotel
	if err := database.DB.First(&hotel, "id = ?", hotelID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel not found"})
	}

	var req HotelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hotel.Name = req.Name
	hotel.City = req.City
	hotel.Country = req.Country
	hotel.Stars = req.Stars
	hotel.Description = req.Description
	hotel.Images = datatypes.NewJSONSlice(req.Images)
	hotel.RoomTypes = datatypes.NewJSONSlice(req.RoomTypes)
	if req.Translations != nil {
		hotel.Translations = datatypes.NewJSONType(req.Translations)
	}

	if err := database.DB.Save(&hotel).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update hotel"})
	}
	return c.JSON(hotel)
}

func ListHotels(c *fiber.Ctx) error {
	query := database.DB.Order("name ASC")
	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}

	var hotels []models.Hotel
	if err := query.Limit(500).Find(&hotels).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list hotels"})
	}
	return c.JSON(hotels)
}

func GetHotel(c *fiber.Ctx) error {
	hotelID, err := uuid.Parse(c.Params("hotelId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid hotel id"})
	}

	var hotel models.Hotel
	if err := database.DB.First(&hotel, "id = ?", hotelID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel not found"})
	}
	return c.JSON(hotel)
}
