package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Tour struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Type        string    `gorm:"size:100" json:"type"`
	City        string    `gorm:"size:100;index" json:"city"`
	Description string    `gorm:"type:text" json:"description"`

	Highlights datatypes.JSONSlice[string] `json:"highlights,omitempty"`
	Images     datatypes.JSONSlice[Image]  `json:"images,omitempty"`

	Translations datatypes.JSONType[LocalizationBundle] `json:"translations,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
