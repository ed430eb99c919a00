package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rihlaty/travel-ops/database"
	"github.com/rihlaty/travel-ops/itinerary"
	"github.com/rihlaty/travel-ops/models"
	"github.com/rihlaty/travel-ops/services"
	"github.com/rihlaty/travel-ops/utils"
)

type HotelEntryRequest struct {
	HotelID          *string                 `json:"hotel_id" validate:"omitempty,uuid"`
	CheckIn          time.Time               `json:"check_in" validate:"required"`
	CheckOut         time.Time               `json:"check_out" validate:"required"`
	Rooms            []models.RoomAllocation `json:"rooms" validate:"dive"`
	AirportID        *string                 `json:"airport_id" validate:"omitempty,uuid"`
	AirportName      string                  `json:"airport_name"`
	VehicleClass     string                  `json:"vehicle_class"`
	IncludeReception bool                    `json:"include_reception"`
	IncludeFarewell  bool                    `json:"include_farewell"`
}

type CreateBookingRequest struct {
	ClientName  string  `json:"client_name" validate:"required"`
	ClientEmail *string `json:"client_email" validate:"omitempty,email"`
	ClientPhone *string `json:"client_phone"`
	Nationality string  `json:"nationality"`

	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtefield=StartDate"`

	Adults         int `json:"adults" validate:"min=1"`
	ChildrenUnder3 int `json:"children_under_3" validate:"min=0"`
	Children3To6   int `json:"children_3_to_6" validate:"min=0"`
	Children6To12  int `json:"children_6_to_12" validate:"min=0"`

	Countries []string `json:"countries"`
	Cities    []string `json:"cities"`

	HotelEntries  []HotelEntryRequest    `json:"hotel_entries" validate:"dive"`
	SelectedTours []models.TourSelection `json:"selected_tours"`
	ItineraryDays []models.ItineraryDay  `json:"itinerary_days"`

	Pricing    *models.PricingBreakdown `json:"pricing"`
	FinalPrice *float64                 `json:"final_price" validate:"omitempty,min=0"`
	Currency   string                   `json:"currency"`
}

// applyBookingRequest rewrites the editable fields of a booking from
// the request and regenerates the stored bilingual summaries, which are
// derived from dates, guests and destinations and go stale on any edit.
func applyBookingRequest(booking *models.Booking, req *CreateBookingRequest, dict *itinerary.Dictionary) {
	booking.ClientName = req.ClientName
	booking.ClientEmail = req.ClientEmail
	booking.ClientPhone = req.ClientPhone
	booking.Nationality = req.Nationality
	booking.StartDate = req.StartDate
	booking.EndDate = req.EndDate
	booking.Adults = req.Adults
	booking.ChildrenUnder3 = req.ChildrenUnder3
	booking.Children3To6 = req.Children3To6
	booking.Children6To12 = req.Children6To12
	booking.Countries = datatypes.NewJSONSlice(req.Countries)
	booking.Cities = datatypes.NewJSONSlice(req.Cities)
	booking.SelectedTours = datatypes.NewJSONSlice(req.SelectedTours)
	booking.ItineraryDays = datatypes.NewJSONSlice(req.ItineraryDays)
	booking.FinalPrice = req.FinalPrice
	booking.Currency = req.Currency
	if booking.Currency == "" {
		booking.Currency = "USD"
	}
	if req.Pricing != nil {
		booking.Pricing = datatypes.NewJSONType(*req.Pricing)
	}

	summaryEN := services.GenerateSummary(booking, dict, itinerary.LangEN)
	summaryAR := services.GenerateSummary(booking, dict, itinerary.LangAR)
	booking.SummaryEN = &summaryEN
	booking.SummaryAR = &summaryAR
}

// buildHotelEntry materializes one stored hotel entry from its request.
// Nights are always recomputed from the dates; the snapshot is seeded
// from the canonical record when one was resolved.
func buildHotelEntry(bookingID uuid.UUID, position int, he HotelEntryRequest, hotelID *uuid.UUID, hotel *models.Hotel) models.HotelEntry {
	entry := models.HotelEntry{
		BookingID:        bookingID,
		HotelID:          hotelID,
		Position:         position,
		CheckIn:          he.CheckIn,
		CheckOut:         he.CheckOut,
		Rooms:            datatypes.NewJSONSlice(he.Rooms),
		AirportName:      he.AirportName,
		VehicleClass:     he.VehicleClass,
		IncludeReception: he.IncludeReception,
		IncludeFarewell:  he.IncludeFarewell,
	}
	nights, _ := itinerary.Nights(he.CheckIn, he.CheckOut, itinerary.DefaultNightsFloor)
	entry.Nights = nights

	if hotel != nil {
		var snap models.ReferenceSnapshot
		itinerary.MergeSnapshot(&snap, hotel)
		entry.Snapshot = datatypes.NewJSONType(snap)
	}
	if he.AirportID != nil {
		if airportID, err := uuid.Parse(*he.AirportID); err == nil {
			entry.AirportID = &airportID
		}
	}
	return entry
}

func createHotelEntries(tx *gorm.DB, bookingID uuid.UUID, requests []HotelEntryRequest) error {
	for i, he := range requests {
		var hotelID *uuid.UUID
		var hotel *models.Hotel
		if he.HotelID != nil {
			if id, err := uuid.Parse(*he.HotelID); err == nil {
				hotelID = &id
				var h models.Hotel
				if err := tx.First(&h, "id = ?", id).Error; err == nil {
					hotel = &h
				}
			}
		}

		entry := buildHotelEntry(bookingID, i, he, hotelID, hotel)
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

func engineDictionary() *itinerary.Dictionary {
	if DocumentEngine != nil {
		return DocumentEngine.Dict
	}
	return itinerary.EmptyDictionary()
}

func CreateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	staffID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	applyBookingRequest(&booking, &req, engineDictionary())
	booking.CreatedBy = staffID

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.GenerateUniqueReferenceCode(tx)
		if err != nil {
			return err
		}
		booking.ReferenceCode = code

		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return createHotelEntries(tx, booking.ID, req.HotelEntries)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking: " + err.Error()})
	}

	database.DB.Preload("HotelEntries").First(&booking, "id = ?", booking.ID)
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// UpdateBooking replaces the editable content of a booking: client and
// trip fields, the hotel entries (rebuilt with recomputed nights and
// freshly seeded snapshots) and the generated summaries.
func UpdateBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	staffID, _ := uuid.Parse(claims["user_id"].(string))

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	applyBookingRequest(&booking, &req, engineDictionary())
	booking.UpdatedBy = &staffID

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("booking_id = ?", booking.ID).Delete(&models.HotelEntry{}).Error; err != nil {
			return err
		}
		return createHotelEntries(tx, booking.ID, req.HotelEntries)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking: " + err.Error()})
	}

	database.DB.Preload("HotelEntries", func(db *gorm.DB) *gorm.DB {
		return db.Order("hotel_entries.position ASC")
	}).First(&booking, "id = ?", booking.ID)
	return c.JSON(booking)
}

func GetBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var booking models.Booking
	err = database.DB.Preload("HotelEntries", func(db *gorm.DB) *gorm.DB {
		return db.Order("hotel_entries.position ASC")
	}).First(&booking, "id = ?", bookingID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	return c.JSON(booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	staffID, _ := uuid.Parse(claims["user_id"].(string))

	var bookings []models.Booking
	if err := database.DB.Where("created_by = ?", staffID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list bookings"})
	}
	return c.JSON(bookings)
}

func ListBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Order("created_at DESC").Limit(200).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list bookings"})
	}
	return c.JSON(bookings)
}

func DeleteBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	result := database.DB.Delete(&models.Booking{}, "id = ?", bookingID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	return c.JSON(fiber.Map{"message": "Booking deleted"})
}
