package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnknownCreator is recorded as CreatedBy when no admin identity is available.
const UnknownCreator = "unknown"

// Restaurant is a venue listed on the platform.
type Restaurant struct {
	ID        string     `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string     `json:"name" gorm:"size:100;not null;index"`
	Rating    float64    `json:"rating" gorm:"not null;default:0"`
	ImageURL  string     `json:"image_url" gorm:"size:2048;not null"`
	CreatedBy string     `json:"created_by" gorm:"size:255"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RestaurantUpdate carries the editable restaurant fields.
type RestaurantUpdate struct {
	Name      string
	Rating    float64
	ImageURL  string
	UpdatedAt time.Time
}
