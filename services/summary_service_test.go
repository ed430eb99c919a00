package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/rihlaty/travel-ops/itinerary"
	"github.com/rihlaty/travel-ops/models"
)

func TestGenerateSummary(t *testing.T) {
	dict := itinerary.NewDictionary(
		map[string]string{"Turkey": "تركيا"},
		nil, nil, nil,
	)

	booking := &models.Booking{
		Adults:         2,
		ChildrenUnder3: 1,
		StartDate:      time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC),
		Countries:      datatypes.NewJSONSlice([]string{"Turkey"}),
	}

	en := GenerateSummary(booking, dict, itinerary.LangEN)
	assert.Equal(t, "A 7-night trip for 2 adults and 1 children across Turkey", en)

	ar := GenerateSummary(booking, dict, itinerary.LangAR)
	assert.Contains(t, ar, "تركيا")
	assert.Contains(t, ar, "7")
}

func TestGenerateSummary_NoChildrenNoDestinations(t *testing.T) {
	booking := &models.Booking{
		Adults:    2,
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
	}

	en := GenerateSummary(booking, nil, itinerary.LangEN)
	assert.Equal(t, "A 3-night trip for 2 adults", en)
}

func TestGenerateSummary_CitiesFallback(t *testing.T) {
	booking := &models.Booking{
		Adults: 1,
		Cities: datatypes.NewJSONSlice([]string{"Istanbul", "Trabzon"}),
	}

	en := GenerateSummary(booking, nil, itinerary.LangEN)
	assert.Contains(t, en, "Istanbul, Trabzon")
}
