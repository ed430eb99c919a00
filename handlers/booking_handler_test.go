package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/rihlaty/travel-ops/itinerary"
	"github.com/rihlaty/travel-ops/models"
)

func TestApplyBookingRequest_RegeneratesSummaries(t *testing.T) {
	staleEN := "A 2-night trip for 1 adults"
	booking := &models.Booking{
		ClientName: "Old Name",
		Adults:     1,
		SummaryEN:  &staleEN,
	}

	req := &CreateBookingRequest{
		ClientName: "Omar",
		StartDate:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
		Adults:     2,
		Countries:  []string{"Turkey"},
	}

	applyBookingRequest(booking, req, itinerary.EmptyDictionary())

	assert.Equal(t, "Omar", booking.ClientName)
	assert.Equal(t, 2, booking.Adults)
	assert.Equal(t, "USD", booking.Currency, "missing currency falls back to the default")

	require.NotNil(t, booking.SummaryEN)
	assert.Equal(t, "A 3-night trip for 2 adults across Turkey", *booking.SummaryEN)
	require.NotNil(t, booking.SummaryAR)
	assert.Contains(t, *booking.SummaryAR, "3")
}

func TestBuildHotelEntry_RecomputesNightsAndSeedsSnapshot(t *testing.T) {
	bookingID := uuid.New()
	hotelID := uuid.New()
	airportID := uuid.New().String()

	hotel := &models.Hotel{
		ID:        hotelID,
		Name:      "Bay View",
		City:      "Istanbul",
		Stars:     5,
		RoomTypes: datatypes.NewJSONSlice([]string{"Twin"}),
	}

	req := HotelEntryRequest{
		CheckIn:          time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
		AirportID:        &airportID,
		AirportName:      "Istanbul Airport",
		VehicleClass:     "Sprinter",
		IncludeReception: true,
	}

	entry := buildHotelEntry(bookingID, 2, req, &hotelID, hotel)

	assert.Equal(t, bookingID, entry.BookingID)
	assert.Equal(t, 2, entry.Position)
	assert.Equal(t, 3, entry.Nights, "nights always recomputed from the dates")
	require.NotNil(t, entry.HotelID)
	assert.Equal(t, hotelID, *entry.HotelID)
	require.NotNil(t, entry.AirportID)
	assert.Equal(t, airportID, entry.AirportID.String())

	snap := entry.Snapshot.Data()
	assert.Equal(t, "Bay View", snap.Name)
	assert.Equal(t, "Istanbul", snap.City)
	assert.Equal(t, 5, snap.Stars)
	assert.Equal(t, []string{"Twin"}, snap.RoomTypes)
}

func TestBuildHotelEntry_UnresolvedHotelKeepsWeakReference(t *testing.T) {
	bookingID := uuid.New()
	hotelID := uuid.New()

	req := HotelEntryRequest{
		CheckIn:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
	}

	entry := buildHotelEntry(bookingID, 0, req, &hotelID, nil)

	require.NotNil(t, entry.HotelID)
	assert.Equal(t, hotelID, *entry.HotelID)
	assert.Empty(t, entry.Snapshot.Data().Name, "no snapshot seeded without a canonical record")
	assert.Equal(t, 1, entry.Nights)
}
