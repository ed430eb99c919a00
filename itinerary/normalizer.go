package itinerary

import (
	"github.com/google/uuid"

	"github.com/rihlaty/travel-ops/models"
)

// NormalizeItinerary produces one ordered day sequence regardless of
// which schema the booking was authored with. A non-empty day-indexed
// itinerary wins and is used verbatim; otherwise each legacy tour
// selection becomes one day, numbered from 1, titled after the tour.
// A booking with neither form yields an empty sequence and the document
// omits the itinerary section entirely.
func NormalizeItinerary(b *models.Booking) []models.ItineraryDay {
	if len(b.ItineraryDays) > 0 {
		days := make([]models.ItineraryDay, len(b.ItineraryDays))
		copy(days, b.ItineraryDays)
		return days
	}

	days := make([]models.ItineraryDay, 0, len(b.SelectedTours))
	for i, t := range b.SelectedTours {
		day := models.ItineraryDay{
			Day:   i + 1,
			Title: t.Name,
		}
		if t.TourID != uuid.Nil {
			day.TourInfo = &models.TourRef{TourID: t.TourID}
		}
		if t.NameAR != nil && *t.NameAR != "" {
			day.Translations = &models.DayTranslations{
				Title: map[string]string{LangAR: *t.NameAR},
			}
		}
		days = append(days, day)
	}
	return days
}
