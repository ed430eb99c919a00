package models

import "github.com/google/uuid"

// ItineraryDay is one day of the day-indexed itinerary schema. Day
// numbers are contiguous starting at 1.
type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Activities  []string `json:"activities,omitempty"`

	IsArrival   bool `json:"is_arrival,omitempty"`
	IsDeparture bool `json:"is_departure,omitempty"`
	IsRest      bool `json:"is_rest,omitempty"`

	TourInfo *TourRef `json:"tour_info,omitempty"`
	Images   []Image  `json:"images,omitempty"`

	Translations *DayTranslations `json:"translations,omitempty"`
}

// TourRef points a day at a canonical tour plus the per-day metadata
// that only makes sense in the context of this booking.
type TourRef struct {
	TourID     uuid.UUID `json:"tour_id"`
	PickupTime string    `json:"pickup_time,omitempty"`
	Duration   string    `json:"duration,omitempty"`
}

// DayTranslations holds per-language overrides for a day's text fields,
// keyed by language code. Absence at any level is normal.
type DayTranslations struct {
	Title       map[string]string   `json:"title,omitempty"`
	Description map[string]string   `json:"description,omitempty"`
	Activities  map[string][]string `json:"activities,omitempty"`
}
