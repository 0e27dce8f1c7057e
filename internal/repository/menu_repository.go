package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"foodadmin/internal/model"
)

// MenuRepository defines menu persistence operations. Menus are always
// addressed through their parent restaurant.
type MenuRepository interface {
	Create(ctx context.Context, menu *model.Menu) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Menu, error)
	CountByRestaurant(ctx context.Context, restaurantID string) (int64, error)
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, menu *model.Menu) error {
	if err := r.db.WithContext(ctx).Create(menu).Error; err != nil {
		return fmt.Errorf("create menu: %w", err)
	}
	return nil
}

// ListByRestaurant returns a restaurant's menus ordered by id.
func (r *menuRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Menu, error) {
	var menus []model.Menu
	if err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Order("id ASC").Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("list menus of %s: %w", restaurantID, err)
	}
	return menus, nil
}

func (r *menuRepository) CountByRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Menu{}).Where("restaurant_id = ?", restaurantID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count menus of %s: %w", restaurantID, err)
	}
	return n, nil
}
