package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Hotel is the canonical hotel record, owned by the reference-data
// catalog and only referenced by bookings.
type Hotel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	City        string    `gorm:"size:100;index" json:"city"`
	Country     string    `gorm:"size:100" json:"country"`
	Stars       int       `gorm:"default:0" json:"stars"`
	Description string    `gorm:"type:text" json:"description"`

	Images    datatypes.JSONSlice[Image]  `json:"images,omitempty"`
	RoomTypes datatypes.JSONSlice[string] `json:"room_types,omitempty"`

	Translations datatypes.JSONType[LocalizationBundle] `json:"translations,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// LocalizationBundle maps language code -> field name -> override text.
// A missing language or field simply means no override exists.
type LocalizationBundle map[string]map[string]string
