package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"foodadmin/internal/model"
)

// MenuItemRepository defines menu item persistence operations.
type MenuItemRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	ListByMenu(ctx context.Context, menuID string) ([]model.MenuItem, error)
	CountByMenu(ctx context.Context, menuID string) (int64, error)
}

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository.
func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create menu item: %w", err)
	}
	return nil
}

func (r *menuItemRepository) ListByMenu(ctx context.Context, menuID string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Where("menu_id = ?", menuID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items of menu %s: %w", menuID, err)
	}
	return items, nil
}

func (r *menuItemRepository) CountByMenu(ctx context.Context, menuID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.MenuItem{}).Where("menu_id = ?", menuID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count items of menu %s: %w", menuID, err)
	}
	return n, nil
}
