package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"foodadmin/internal/errors"
	"foodadmin/internal/model"
)

// RestaurantRepository defines restaurant persistence operations.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) error
	FindByID(ctx context.Context, id string) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	ListIDs(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, update model.RestaurantUpdate) error
}

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository.
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// Create inserts a restaurant; ID and CreatedAt are assigned by the store.
func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	if err := r.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}

// FindByID finds a restaurant by ID.
func (r *restaurantRepository) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("find restaurant %s: %w", id, err)
	}
	return &restaurant, nil
}

// List returns every restaurant, oldest first.
func (r *restaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

// ListIDs returns the identifiers of every restaurant.
func (r *restaurantRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&model.Restaurant{}).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list restaurant ids: %w", err)
	}
	return ids, nil
}

// Count returns the number of restaurants.
func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Restaurant{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count restaurants: %w", err)
	}
	return n, nil
}

// Update writes the editable fields of one restaurant.
func (r *restaurantRepository) Update(ctx context.Context, id string, update model.RestaurantUpdate) error {
	res := r.db.WithContext(ctx).Model(&model.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       update.Name,
			"rating":     update.Rating,
			"image_url":  update.ImageURL,
			"updated_at": update.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update restaurant %s: %w", id, res.Error)
	}
	return nil
}
