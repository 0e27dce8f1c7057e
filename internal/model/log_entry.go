package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecentLogLimit is how many log entries the dashboard shows.
const RecentLogLimit = 10

// LogEntry is an append-only record of an administrative action.
type LogEntry struct {
	ID           string         `json:"id" gorm:"type:char(36);primaryKey"`
	Message      string         `json:"message" gorm:"type:text;not null"`
	Admin        string         `json:"admin,omitempty" gorm:"size:255;index"`
	RestaurantID string         `json:"restaurant_id,omitempty" gorm:"size:36;index"`
	Details      map[string]any `json:"details,omitempty" gorm:"type:text;serializer:json"`
	Timestamp    time.Time      `json:"timestamp" gorm:"not null;index"`
}

// BeforeCreate assigns the identifier and the store timestamp. Any
// caller-provided timestamp is overwritten.
func (l *LogEntry) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.Timestamp = tx.NowFunc()
	return nil
}
