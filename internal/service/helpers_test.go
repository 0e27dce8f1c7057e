package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodadmin/internal/db"
	"foodadmin/internal/model"
	"foodadmin/internal/repository"
)

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	gdb, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repository.NewGormRepositories(gdb)
}

// seedTree creates one restaurant per entry of menuSizes; each restaurant
// gets one menu per inner value holding that many items.
func seedTree(t *testing.T, repos *repository.Repositories, menuSizes [][]int) []model.Restaurant {
	t.Helper()
	ctx := context.Background()
	var out []model.Restaurant
	for ri, menus := range menuSizes {
		r := &model.Restaurant{Name: "Restaurant " + string(rune('A'+ri)), ImageURL: "https://example.com/r.png"}
		require.NoError(t, repos.Restaurants.Create(ctx, r))
		for _, size := range menus {
			m := &model.Menu{RestaurantID: r.ID, Name: "Menu"}
			require.NoError(t, repos.Menus.Create(ctx, m))
			for i := 0; i < size; i++ {
				require.NoError(t, repos.MenuItems.Create(ctx, &model.MenuItem{MenuID: m.ID, Name: "Item", InStock: true}))
			}
		}
		out = append(out, *r)
	}
	return out
}

func ratingPtr(v float64) *float64 {
	return &v
}

// MockRestaurantRepository is a mock implementation of RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) ListIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRestaurantRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, id string, update model.RestaurantUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

// MockMenuRepository is a mock implementation of MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, menu *model.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Menu, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuRepository) CountByRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(int64), args.Error(1)
}

// MockMenuItemRepository is a mock implementation of MenuItemRepository.
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) ListByMenu(ctx context.Context, menuID string) ([]model.MenuItem, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) CountByMenu(ctx context.Context, menuID string) (int64, error) {
	args := m.Called(ctx, menuID)
	return args.Get(0).(int64), args.Error(1)
}

// MockLogRepository is a mock implementation of LogRepository.
type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogRepository) ListRecent(ctx context.Context, limit int) ([]model.LogEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func atomicAdd(p *int32, d int32) int32 {
	return atomic.AddInt32(p, d)
}

func atomicMax(p *int32, v int32) {
	for {
		cur := atomic.LoadInt32(p)
		if v <= cur || atomic.CompareAndSwapInt32(p, cur, v) {
			return
		}
	}
}
