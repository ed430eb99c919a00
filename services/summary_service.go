package services

import (
	"fmt"
	"strings"

	"github.com/rihlaty/travel-ops/itinerary"
	"github.com/rihlaty/travel-ops/models"
)

// GenerateSummary produces the one-line trip summary stored on the
// booking in both languages at authoring time. The composition engine
// only reads these back; regenerate after every edit that changes
// dates, guests or destinations.
func GenerateSummary(b *models.Booking, dict *itinerary.Dictionary, lang string) string {
	if dict == nil {
		dict = itinerary.EmptyDictionary()
	}
	nights, _ := itinerary.Nights(b.StartDate, b.EndDate, itinerary.DefaultNightsFloor)
	children := itinerary.TotalChildren(b)

	var destinations []string
	for _, c := range b.Countries {
		destinations = append(destinations, dict.PlaceName(c, lang))
	}
	if len(destinations) == 0 {
		destinations = b.Cities
	}

	if lang == itinerary.LangAR {
		summary := fmt.Sprintf("رحلة لمدة %d ليالٍ لـ%d بالغ", nights, b.Adults)
		if children > 0 {
			summary += fmt.Sprintf(" و%d أطفال", children)
		}
		if len(destinations) > 0 {
			summary += " في " + strings.Join(destinations, "، ")
		}
		return summary
	}

	summary := fmt.Sprintf("A %d-night trip for %d adults", nights, b.Adults)
	if children > 0 {
		summary += fmt.Sprintf(" and %d children", children)
	}
	if len(destinations) > 0 {
		summary += " across " + strings.Join(destinations, ", ")
	}
	return summary
}
