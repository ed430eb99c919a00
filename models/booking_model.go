package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ReferenceCode string    `gorm:"size:12;unique" json:"reference_code"`

	ClientName  string  `gorm:"size:255;not null" json:"client_name"`
	ClientEmail *string `gorm:"size:255" json:"client_email"`
	ClientPhone *string `gorm:"size:50" json:"client_phone"`
	Nationality string  `gorm:"size:100" json:"nationality"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Adults         int `gorm:"default:1" json:"adults"`
	ChildrenUnder3 int `gorm:"default:0" json:"children_under_3"`
	Children3To6   int `gorm:"default:0" json:"children_3_to_6"`
	Children6To12  int `gorm:"default:0" json:"children_6_to_12"`

	Countries datatypes.JSONSlice[string] `json:"countries"`
	Cities    datatypes.JSONSlice[string] `json:"cities"`

	HotelEntries []HotelEntry `gorm:"foreignKey:BookingID" json:"hotel_entries"`

	// Exactly one itinerary form is expected per booking. SelectedTours is
	// the legacy flat list; ItineraryDays is the day-indexed schema that
	// replaced it. Both are kept so older bookings stay renderable.
	SelectedTours datatypes.JSONSlice[TourSelection] `json:"selected_tours,omitempty"`
	ItineraryDays datatypes.JSONSlice[ItineraryDay]  `json:"itinerary_days,omitempty"`

	Pricing    datatypes.JSONType[PricingBreakdown] `json:"pricing"`
	FinalPrice *float64                             `gorm:"type:numeric(12,2)" json:"final_price"`
	Currency   string                               `gorm:"size:3;default:'USD'" json:"currency"`

	SummaryEN *string `gorm:"type:text" json:"summary_en"`
	SummaryAR *string `gorm:"type:text" json:"summary_ar"`

	CreatedBy uuid.UUID  `json:"created_by"`
	UpdatedBy *uuid.UUID `json:"updated_by"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TourSelection is one entry of the legacy flat tour list.
type TourSelection struct {
	TourID uuid.UUID `json:"tour_id"`
	Name   string    `json:"name"`
	NameAR *string   `json:"name_ar,omitempty"`
	Price  *float64  `json:"price,omitempty"`
}

type PricingBreakdown struct {
	HotelCosts         []HotelCostLine `json:"hotel_costs,omitempty"`
	TransportationCost float64         `json:"transportation_cost"`
	ToursCost          float64         `json:"tours_cost"`
}

type HotelCostLine struct {
	HotelName string  `json:"hotel_name"`
	Amount    float64 `json:"amount"`
}
