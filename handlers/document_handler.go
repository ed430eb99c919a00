package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rihlaty/travel-ops/itinerary"
	"github.com/rihlaty/travel-ops/notifications"
	"github.com/rihlaty/travel-ops/services"
	"github.com/rihlaty/travel-ops/websocket"
)

// DocumentEngine is wired at startup.
var DocumentEngine *itinerary.Engine

func InitDocumentEngine(engine *itinerary.Engine) {
	DocumentEngine = engine
}

// GetBookingDocument renders the bilingual travel program for one
// booking and streams the PDF back. Query parameters select the target
// language and the visibility toggles.
func GetBookingDocument(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	lang := c.Query("lang", itinerary.LangEN)
	if lang != itinerary.LangEN && lang != itinerary.LangAR {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported language: " + lang})
	}

	opts := itinerary.Options{
		HideHeader:         c.QueryBool("hideHeader"),
		HidePrice:          c.QueryBool("hidePrice"),
		HideContact:        c.QueryBool("hideContact"),
		HidePackageMessage: c.QueryBool("hidePackageMessage"),
	}

	pdf, filename, err := DocumentEngine.Render(c.Context(), bookingID, lang, opts)
	if err != nil {
		if errors.Is(err, itinerary.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		var renderErr *itinerary.RenderError
		if errors.As(err, &renderErr) {
			log.Printf("🔥 Document render failed for booking %s: %v", bookingID, err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Document rendering failed, please retry"})
		}
		log.Printf("🔥 Document composition failed for booking %s: %v", bookingID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compose document"})
	}

	go archiveAndNotify(bookingID, lang, filename, pdf)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdf)
}

// archiveAndNotify runs the best-effort side effects of a successful
// render off the request path: cloud archival, the dashboard event and
// the client email.
func archiveAndNotify(bookingID uuid.UUID, lang, filename string, pdf []byte) {
	archiveURL, err := services.ArchiveDocument(pdf, bookingID, filename)
	if err != nil {
		log.Printf("⚠️ Failed to archive document for booking %s: %v", bookingID, err)
	}

	booking, err := services.GormBookingStore{}.FindByID(context.Background(), bookingID)
	if err != nil || booking == nil {
		return
	}

	websocket.NotifyDocumentRendered(bookingID, booking.ClientName, lang, filename, archiveURL)

	if booking.ClientEmail != nil && *booking.ClientEmail != "" {
		notifications.SendItineraryReady(booking.ClientName, *booking.ClientEmail, archiveURL)
	}
}
