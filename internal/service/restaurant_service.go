package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"foodadmin/internal/cache"
	"foodadmin/internal/model"
	"foodadmin/internal/repository"
)

const (
	restaurantCacheKeyPrefix = "restaurant:"
	restaurantCacheTTL       = 5 * time.Minute
)

// RestaurantDetail is a restaurant with its menus, each carrying its items.
type RestaurantDetail struct {
	Restaurant model.Restaurant `json:"restaurant"`
	Menus      []model.Menu     `json:"menus"`
}

// RestaurantService handles restaurant reads and admin mutations.
type RestaurantService interface {
	Create(ctx context.Context, input RestaurantInput, adminEmail string) (*model.Restaurant, error)
	Get(ctx context.Context, id string) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	Detail(ctx context.Context, id string) (*RestaurantDetail, error)
	MenuItems(ctx context.Context, id string) ([]model.MenuItem, error)
	Update(ctx context.Context, id string, input RestaurantInput, adminEmail string) (*model.Restaurant, error)
}

// restaurantCache is the subset of cache.Client the service uses.
type restaurantCache interface {
	GetJSON(ctx context.Context, key string, dst any) bool
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

var _ restaurantCache = (*cache.Client)(nil)

// cacheVersions counts writes per restaurant. A read only fills the cache
// when no write started or finished while it was in flight.
type cacheVersions struct {
	mu sync.Mutex
	v  map[string]uint64
}

func (c *cacheVersions) current(id string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v[id]
}

func (c *cacheVersions) bump(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v[id]++
}

type restaurantService struct {
	repos       *repository.Repositories
	activity    ActivityLogger
	validator   *RestaurantValidator
	cache       restaurantCache
	versions    *cacheVersions
	concurrency int
	now         func() time.Time
}

// NewRestaurantService creates a new restaurant service. cache may be nil.
func NewRestaurantService(repos *repository.Repositories, activity ActivityLogger, cache *cache.Client, concurrency int) RestaurantService {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &restaurantService{
		repos:       repos,
		activity:    activity,
		validator:   NewRestaurantValidator(),
		cache:       cache,
		versions:    &cacheVersions{v: make(map[string]uint64)},
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Create validates input, writes the restaurant and logs the action.
// Nothing is written when validation fails.
func (s *restaurantService) Create(ctx context.Context, input RestaurantInput, adminEmail string) (*model.Restaurant, error) {
	input, err := s.validator.Normalize(input)
	if err != nil {
		return nil, err
	}

	createdBy := adminEmail
	if createdBy == "" {
		createdBy = model.UnknownCreator
	}
	restaurant := &model.Restaurant{
		Name:      input.Name,
		Rating:    *input.Rating,
		ImageURL:  input.ImageURL,
		CreatedBy: createdBy,
	}
	if err := s.repos.Restaurants.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	s.record(ctx, Activity{
		Message:      "Created new restaurant: " + restaurant.Name,
		Admin:        adminEmail,
		RestaurantID: restaurant.ID,
		Details:      inputDetails(input),
	})
	return restaurant, nil
}

// Get returns one restaurant, served from the cache when possible.
func (s *restaurantService) Get(ctx context.Context, id string) (*model.Restaurant, error) {
	key := restaurantCacheKeyPrefix + id
	var cached model.Restaurant
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	version := s.versions.current(id)
	restaurant, err := s.repos.Restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.versions.current(id) != version {
		return restaurant, nil
	}
	if err := s.cache.SetJSON(ctx, key, restaurant, restaurantCacheTTL); err != nil {
		slog.DebugContext(ctx, "restaurant cache write failed", "restaurant_id", id, "error", err)
	}
	return restaurant, nil
}

func (s *restaurantService) List(ctx context.Context) ([]model.Restaurant, error) {
	restaurants, err := s.repos.Restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

// Detail reads the restaurant, then its menus, then every menu's items.
func (s *restaurantService) Detail(ctx context.Context, id string) (*RestaurantDetail, error) {
	ctx, span := tracer.Start(ctx, "restaurant.Detail")
	defer span.End()

	restaurant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	menus, err := s.menusWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RestaurantDetail{Restaurant: *restaurant, Menus: menus}, nil
}

// MenuItems returns the items of every menu of the restaurant as one list.
func (s *restaurantService) MenuItems(ctx context.Context, id string) ([]model.MenuItem, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	menus, err := s.menusWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	items := []model.MenuItem{}
	for _, m := range menus {
		items = append(items, m.Items...)
	}
	return items, nil
}

func (s *restaurantService) menusWithItems(ctx context.Context, restaurantID string) ([]model.Menu, error) {
	menus, err := s.repos.Menus.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	perMenu, err := fanOut(ctx, s.concurrency, menus, func(ctx context.Context, m model.Menu) ([]model.MenuItem, error) {
		return s.repos.MenuItems.ListByMenu(ctx, m.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	for i := range menus {
		items := make([]model.MenuItem, 0, len(perMenu[i]))
		for _, item := range perMenu[i] {
			items = append(items, item.WithDisplayDefaults())
		}
		menus[i].Items = items
	}
	return menus, nil
}

// Update overwrites the editable fields of an existing restaurant. Menus
// and items are not touched.
func (s *restaurantService) Update(ctx context.Context, id string, input RestaurantInput, adminEmail string) (*model.Restaurant, error) {
	input, err := s.validator.Normalize(input)
	if err != nil {
		return nil, err
	}
	if _, err := s.repos.Restaurants.FindByID(ctx, id); err != nil {
		return nil, err
	}

	update := model.RestaurantUpdate{
		Name:      input.Name,
		Rating:    *input.Rating,
		ImageURL:  input.ImageURL,
		UpdatedAt: s.now().UTC(),
	}
	key := restaurantCacheKeyPrefix + id
	s.versions.bump(id)
	_ = s.cache.Delete(ctx, key)
	err = s.repos.Restaurants.Update(ctx, id, update)
	s.versions.bump(id)
	_ = s.cache.Delete(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("update restaurant: %w", err)
	}

	s.record(ctx, Activity{
		Message:      "Updated restaurant: " + input.Name,
		Admin:        adminEmail,
		RestaurantID: id,
		Details:      inputDetails(input),
	})

	restaurant, err := s.repos.Restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

// record writes an activity entry. A failed write is reported and otherwise
// ignored.
func (s *restaurantService) record(ctx context.Context, activity Activity) {
	if err := s.activity.LogActivity(ctx, activity); err != nil {
		slog.WarnContext(ctx, "activity log write failed",
			"message", activity.Message,
			"restaurant_id", activity.RestaurantID,
			"error", err,
		)
	}
}

func inputDetails(input RestaurantInput) map[string]any {
	return map[string]any{
		"name":      input.Name,
		"rating":    *input.Rating,
		"image_url": input.ImageURL,
	}
}
