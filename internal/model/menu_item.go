package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnnamedItem is shown in place of an empty menu item name.
const UnnamedItem = "Unnamed Item"

// MenuItem is a dish or product offered on a menu.
type MenuItem struct {
	ID           string                     `json:"id" gorm:"type:char(36);primaryKey"`
	MenuID       string                     `json:"menu_id" gorm:"type:char(36);not null;index"`
	Name         string                     `json:"name" gorm:"size:255"`
	Description  string                     `json:"description" gorm:"type:text"`
	ImageURL     string                     `json:"image_url" gorm:"size:2048"`
	BasePrice    decimal.Decimal            `json:"base_price" gorm:"type:decimal(20,2);not null;default:0"`
	Category     string                     `json:"category" gorm:"size:100;index"`
	InStock      bool                       `json:"in_stock"`
	OptionPrices map[string]decimal.Decimal `json:"option_prices" gorm:"type:text;serializer:json"`
	Options      []string                   `json:"options" gorm:"type:text;serializer:json"`
	CreatedAt    time.Time                  `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// WithDisplayDefaults fills the fields a dashboard expects to be present.
func (i MenuItem) WithDisplayDefaults() MenuItem {
	if i.Name == "" {
		i.Name = UnnamedItem
	}
	if i.OptionPrices == nil {
		i.OptionPrices = map[string]decimal.Decimal{}
	}
	if i.Options == nil {
		i.Options = []string{}
	}
	return i
}
