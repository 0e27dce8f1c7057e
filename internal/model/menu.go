package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Menu groups menu items under a restaurant.
type Menu struct {
	ID           string    `json:"id" gorm:"type:char(36);primaryKey"`
	RestaurantID string    `json:"restaurant_id" gorm:"type:char(36);not null;index"`
	Name         string    `json:"name" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`

	// Items is populated by detail reads only.
	Items []MenuItem `json:"items,omitempty" gorm:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
