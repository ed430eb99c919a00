package itinerary

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/rihlaty/travel-ops/models"
)

func TestNormalizeItinerary_DayIndexedSchemaWinsVerbatim(t *testing.T) {
	booking := &models.Booking{
		ItineraryDays: datatypes.NewJSONSlice([]models.ItineraryDay{
			{Day: 1, Title: "Arrival", IsArrival: true},
			{Day: 3, Title: "Free day", IsRest: true},
		}),
		SelectedTours: datatypes.NewJSONSlice([]models.TourSelection{
			{Name: "Old City Walk"},
		}),
	}

	days := NormalizeItinerary(booking)
	require.Len(t, days, 2)
	assert.Equal(t, "Arrival", days[0].Title)
	// day numbers and gaps are kept as authored
	assert.Equal(t, 3, days[1].Day)
}

func TestNormalizeItinerary_LegacyToursBecomeDays(t *testing.T) {
	tourID := uuid.New()
	nameAR := "جولة المدينة القديمة"
	booking := &models.Booking{
		SelectedTours: datatypes.NewJSONSlice([]models.TourSelection{
			{TourID: tourID, Name: "Old City Walk", NameAR: &nameAR},
			{Name: "Cable Car"},
		}),
	}

	days := NormalizeItinerary(booking)
	require.Len(t, days, 2)

	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "Old City Walk", days[0].Title)
	require.NotNil(t, days[0].TourInfo)
	assert.Equal(t, tourID, days[0].TourInfo.TourID)
	require.NotNil(t, days[0].Translations)
	assert.Equal(t, nameAR, days[0].Translations.Title[LangAR])

	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, "Cable Car", days[1].Title)
	assert.Nil(t, days[1].TourInfo, "a legacy selection without a tour id carries no tour reference")
	assert.Nil(t, days[1].Translations)
}

func TestNormalizeItinerary_NeitherSchemaYieldsEmpty(t *testing.T) {
	assert.Empty(t, NormalizeItinerary(&models.Booking{}))
}

func TestNormalizeItinerary_DoesNotAliasBookingDays(t *testing.T) {
	booking := &models.Booking{
		ItineraryDays: datatypes.NewJSONSlice([]models.ItineraryDay{{Day: 1, Title: "Arrival"}}),
	}

	days := NormalizeItinerary(booking)
	days[0].Title = "mutated"
	assert.Equal(t, "Arrival", booking.ItineraryDays[0].Title)
}
