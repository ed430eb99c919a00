package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/rihlaty/travel-ops/itinerary"
)

// GetLocale serves the static translation dictionary for one of the
// supported languages, for clients that localize on their side.
func GetLocale(c *fiber.Ctx) error {
	lang := c.Params("lang")
	if lang != itinerary.LangEN && lang != itinerary.LangAR {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported language parameter"})
	}

	filePath := filepath.Join("locales", fmt.Sprintf("%s.json", lang))
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Language file not found"})
	}

	return c.SendFile(filePath)
}
