package mongorepo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodadmin/internal/model"
)

type restaurantDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Rating    float64            `bson:"rating"`
	ImageURL  string             `bson:"image_url"`
	CreatedBy string             `bson:"created_by"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty"`
}

func (d restaurantDoc) toModel() model.Restaurant {
	return model.Restaurant{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Rating:    d.Rating,
		ImageURL:  d.ImageURL,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type menuDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RestaurantID string             `bson:"restaurant_id"`
	Name         string             `bson:"name"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d menuDoc) toModel() model.Menu {
	return model.Menu{
		ID:           d.ID.Hex(),
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		CreatedAt:    d.CreatedAt,
	}
}

// menuItemDoc keeps prices as decimal strings. A missing in_stock field
// reads as in stock.
type menuItemDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	MenuID       string             `bson:"menu_id"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty"`
	BasePrice    string             `bson:"base_price"`
	Category     string             `bson:"category,omitempty"`
	InStock      *bool              `bson:"in_stock,omitempty"`
	OptionPrices map[string]string  `bson:"option_prices,omitempty"`
	Options      []string           `bson:"options,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func newMenuItemDoc(item *model.MenuItem) menuItemDoc {
	inStock := item.InStock
	doc := menuItemDoc{
		MenuID:      item.MenuID,
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		BasePrice:   item.BasePrice.String(),
		Category:    item.Category,
		InStock:     &inStock,
		Options:     item.Options,
	}
	if len(item.OptionPrices) > 0 {
		doc.OptionPrices = make(map[string]string, len(item.OptionPrices))
		for k, v := range item.OptionPrices {
			doc.OptionPrices[k] = v.String()
		}
	}
	return doc
}

// toModel converts the document. A missing price reads as zero; a stored
// price that does not parse is an error.
func (d menuItemDoc) toModel() (model.MenuItem, error) {
	item := model.MenuItem{
		ID:          d.ID.Hex(),
		MenuID:      d.MenuID,
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Category:    d.Category,
		InStock:     d.InStock == nil || *d.InStock,
		Options:     d.Options,
		CreatedAt:   d.CreatedAt,
	}
	var err error
	if item.BasePrice, err = parsePrice(d.BasePrice); err != nil {
		return model.MenuItem{}, fmt.Errorf("menu item %s base price: %w", item.ID, err)
	}
	if d.OptionPrices != nil {
		item.OptionPrices = make(map[string]decimal.Decimal, len(d.OptionPrices))
		for k, v := range d.OptionPrices {
			if item.OptionPrices[k], err = parsePrice(v); err != nil {
				return model.MenuItem{}, fmt.Errorf("menu item %s option %q price: %w", item.ID, k, err)
			}
		}
	}
	return item, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"created_at"`
}

type adminDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Active       bool               `bson:"active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d adminDoc) toModel() model.Admin {
	return model.Admin{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Active:       d.Active,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type logDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Message      string             `bson:"message"`
	Admin        string             `bson:"admin,omitempty"`
	RestaurantID string             `bson:"restaurant_id,omitempty"`
	Details      map[string]any     `bson:"details,omitempty"`
	Timestamp    time.Time          `bson:"timestamp"`
}

func (d logDoc) toModel() model.LogEntry {
	return model.LogEntry{
		ID:           d.ID.Hex(),
		Message:      d.Message,
		Admin:        d.Admin,
		RestaurantID: d.RestaurantID,
		Details:      d.Details,
		Timestamp:    d.Timestamp,
	}
}
