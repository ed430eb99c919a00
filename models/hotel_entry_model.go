package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HotelEntry is one hotel stay within a booking. It carries a frozen
// snapshot of the hotel's display data as it looked when the booking was
// authored; the canonical Hotel record is only a weak reference.
type HotelEntry struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID  `gorm:"not null;index" json:"booking_id"`
	HotelID   *uuid.UUID `json:"hotel_id"`
	Position  int        `gorm:"default:0" json:"position"`

	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Nights   int       `gorm:"default:0" json:"nights"`

	Snapshot datatypes.JSONType[ReferenceSnapshot] `json:"snapshot"`
	Rooms    datatypes.JSONSlice[RoomAllocation]   `json:"rooms"`

	AirportID        *uuid.UUID `json:"airport_id"`
	AirportName      string     `gorm:"size:255" json:"airport_name"`
	VehicleClass     string     `gorm:"size:100" json:"vehicle_class"`
	IncludeReception bool       `gorm:"default:false" json:"include_reception"`
	IncludeFarewell  bool       `gorm:"default:false" json:"include_farewell"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReferenceSnapshot is the frozen subset of a hotel's display fields
// captured at booking time.
type ReferenceSnapshot struct {
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Stars       int      `json:"stars"`
	Description string   `json:"description"`
	Images      []Image  `json:"images,omitempty"`
	RoomTypes   []string `json:"room_types,omitempty"`
}

// RoomAllocation assigns occupants to one room of a hotel entry.
// RoomTypeIndex points into the snapshot's room-type list.
type RoomAllocation struct {
	RoomTypeIndex  int `json:"room_type_index"`
	Adults         int `json:"adults"`
	ChildrenUnder3 int `json:"children_under_3"`
	Children3To6   int `json:"children_3_to_6"`
	Children6To12  int `json:"children_6_to_12"`
}

type Image struct {
	URL       string `json:"url"`
	Caption   string `json:"caption,omitempty"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}
