package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodadmin/internal/errors"
	"foodadmin/internal/model"
	"foodadmin/internal/repository"
)

func newTestRestaurantService(repos *repository.Repositories) RestaurantService {
	return NewRestaurantService(repos, NewActivityLogger(repos.Logs), nil, 2)
}

func TestRestaurantService_Create(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := newTestRestaurantService(repos)
	agg := NewAggregationService(repos, 2)

	before, err := agg.CountRestaurants(ctx)
	require.NoError(t, err)

	created, err := svc.Create(ctx, RestaurantInput{
		Name:     "  Test Cafe ",
		Rating:   ratingPtr(3.5),
		ImageURL: "https://example.com/x.png",
	}, "admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Test Cafe", created.Name)
	assert.Equal(t, "admin@example.com", created.CreatedBy)

	after, err := agg.CountRestaurants(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)

	logs, err := agg.RecentLogs(ctx, 0)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.True(t, strings.Contains(logs[0].Message, "Test Cafe"))
	assert.Equal(t, created.ID, logs[0].RestaurantID)
	assert.Equal(t, "admin@example.com", logs[0].Admin)
	assert.Equal(t, "https://example.com/x.png", logs[0].Details["image_url"])
}

func TestRestaurantService_CreateUnknownCreator(t *testing.T) {
	repos := newTestRepos(t)
	created, err := newTestRestaurantService(repos).Create(context.Background(), RestaurantInput{
		Name: "Anon", Rating: ratingPtr(0), ImageURL: "http://example.com/a.png",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, model.UnknownCreator, created.CreatedBy)
}

func TestRestaurantService_CreateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   RestaurantInput
		wantErr error
	}{
		{
			name:    "rating above five",
			input:   RestaurantInput{Name: "Cafe", Rating: ratingPtr(5.1), ImageURL: "https://example.com/x.png"},
			wantErr: errors.ErrInvalidRating,
		},
		{
			name:    "negative rating",
			input:   RestaurantInput{Name: "Cafe", Rating: ratingPtr(-1), ImageURL: "https://example.com/x.png"},
			wantErr: errors.ErrInvalidRating,
		},
		{
			name:    "missing rating",
			input:   RestaurantInput{Name: "Cafe", ImageURL: "https://example.com/x.png"},
			wantErr: errors.ErrInvalidRating,
		},
		{
			name:    "name too short after trim",
			input:   RestaurantInput{Name: " a ", Rating: ratingPtr(4), ImageURL: "https://example.com/x.png"},
			wantErr: errors.ErrInvalidRestaurant,
		},
		{
			name:    "name too long",
			input:   RestaurantInput{Name: strings.Repeat("n", 101), Rating: ratingPtr(4), ImageURL: "https://example.com/x.png"},
			wantErr: errors.ErrInvalidRestaurant,
		},
		{
			name:    "image not http",
			input:   RestaurantInput{Name: "Cafe", Rating: ratingPtr(4), ImageURL: "ftp://example.com/x.png"},
			wantErr: errors.ErrInvalidRestaurant,
		},
		{
			name:    "everything missing",
			input:   RestaurantInput{},
			wantErr: errors.ErrInvalidRestaurant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repos := newTestRepos(t)
			svc := newTestRestaurantService(repos)

			_, err := svc.Create(ctx, tt.input, "admin@example.com")
			assert.ErrorIs(t, err, tt.wantErr)

			n, err := repos.Restaurants.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, n)
			logs, err := repos.Logs.ListRecent(ctx, 10)
			require.NoError(t, err)
			assert.Empty(t, logs)
		})
	}
}

func TestRestaurantService_CreateSurvivesLogFailure(t *testing.T) {
	repos := newTestRepos(t)
	logs := new(MockLogRepository)
	logs.On("Create", mock.Anything, mock.AnythingOfType("*model.LogEntry")).Return(stderrors.New("log store down"))

	svc := NewRestaurantService(repos, NewActivityLogger(logs), nil, 2)
	created, err := svc.Create(context.Background(), RestaurantInput{
		Name: "Resilient", Rating: ratingPtr(2), ImageURL: "https://example.com/r.png",
	}, "admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	logs.AssertExpectations(t)
}

func TestRestaurantService_UpdateKeepsMenus(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	restaurants := seedTree(t, repos, [][]int{{2, 2}, {1}})
	svc := NewRestaurantService(repos, NewActivityLogger(repos.Logs), nil, 2).(*restaurantService)
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	agg := NewAggregationService(repos, 2)

	menusBefore, err := agg.CountMenus(ctx)
	require.NoError(t, err)
	itemsBefore, err := agg.CountMenuItems(ctx)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, restaurants[0].ID, RestaurantInput{
		Name: "Renamed", Rating: ratingPtr(4.8), ImageURL: "https://example.com/new.png",
	}, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 4.8, updated.Rating)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, fixed.Equal(updated.UpdatedAt.UTC()))

	menusAfter, err := agg.CountMenus(ctx)
	require.NoError(t, err)
	itemsAfter, err := agg.CountMenuItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, menusBefore, menusAfter)
	assert.Equal(t, itemsBefore, itemsAfter)

	logs, err := agg.RecentLogs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Updated restaurant: Renamed", logs[0].Message)
}

func TestRestaurantService_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	restaurants := seedTree(t, repos, [][]int{{}})
	svc := newTestRestaurantService(repos)

	_, err := svc.Update(ctx, "missing", RestaurantInput{
		Name: "Ghost", Rating: ratingPtr(1), ImageURL: "https://example.com/g.png",
	}, "")
	assert.ErrorIs(t, err, errors.ErrRestaurantNotFound)

	_, err = svc.Update(ctx, restaurants[0].ID, RestaurantInput{
		Name: "Valid", Rating: ratingPtr(9), ImageURL: "https://example.com/g.png",
	}, "")
	assert.ErrorIs(t, err, errors.ErrInvalidRating)

	got, err := svc.Get(ctx, restaurants[0].ID)
	require.NoError(t, err)
	assert.Equal(t, restaurants[0].Name, got.Name)
}

func TestRestaurantService_DetailAndMenuItems(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	restaurants := seedTree(t, repos, [][]int{{2, 1}})
	menus, err := repos.Menus.ListByRestaurant(ctx, restaurants[0].ID)
	require.NoError(t, err)
	require.NoError(t, repos.MenuItems.Create(ctx, &model.MenuItem{MenuID: menus[0].ID}))

	svc := newTestRestaurantService(repos)

	detail, err := svc.Detail(ctx, restaurants[0].ID)
	require.NoError(t, err)
	assert.Equal(t, restaurants[0].ID, detail.Restaurant.ID)
	require.Len(t, detail.Menus, 2)
	total := 0
	unnamed := 0
	for _, m := range detail.Menus {
		total += len(m.Items)
		for _, it := range m.Items {
			assert.NotNil(t, it.Options)
			if it.Name == model.UnnamedItem {
				unnamed++
			}
		}
	}
	assert.Equal(t, 4, total)
	assert.Equal(t, 1, unnamed)

	items, err := svc.MenuItems(ctx, restaurants[0].ID)
	require.NoError(t, err)
	assert.Len(t, items, 4)

	_, err = svc.Detail(ctx, "missing")
	assert.ErrorIs(t, err, errors.ErrRestaurantNotFound)
	_, err = svc.MenuItems(ctx, "missing")
	assert.ErrorIs(t, err, errors.ErrRestaurantNotFound)
}

func TestRestaurantService_DetailFailsOnItemRead(t *testing.T) {
	errRead := stderrors.New("items unavailable")
	restaurants := new(MockRestaurantRepository)
	restaurants.On("FindByID", mock.Anything, "r1").Return(&model.Restaurant{ID: "r1", Name: "One"}, nil)
	menus := new(MockMenuRepository)
	menus.On("ListByRestaurant", mock.Anything, "r1").Return([]model.Menu{{ID: "m1"}, {ID: "m2"}}, nil)
	items := new(MockMenuItemRepository)
	items.On("ListByMenu", mock.Anything, "m1").Return([]model.MenuItem{{ID: "i1"}}, nil).Maybe()
	items.On("ListByMenu", mock.Anything, "m2").Return(nil, errRead)

	repos := &repository.Repositories{Restaurants: restaurants, Menus: menus, MenuItems: items}
	svc := NewRestaurantService(repos, NewActivityLogger(new(MockLogRepository)), nil, 2)

	detail, err := svc.Detail(context.Background(), "r1")
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, errRead)
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, dst any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.data[key]
	return ok && json.Unmarshal(data, dst) == nil
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

// pausedRestaurantRepository holds the first FindByID result until released.
type pausedRestaurantRepository struct {
	repository.RestaurantRepository
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (r *pausedRestaurantRepository) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	restaurant, err := r.RestaurantRepository.FindByID(ctx, id)
	paused := false
	r.once.Do(func() { paused = true })
	if paused {
		close(r.read)
		<-r.release
	}
	return restaurant, err
}

func TestRestaurantService_CachedReadRacingUpdateIsNotStored(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	original := &model.Restaurant{Name: "Old", Rating: 1, ImageURL: "https://example.com/o.png"}
	require.NoError(t, repos.Restaurants.Create(ctx, original))

	paused := &pausedRestaurantRepository{
		RestaurantRepository: repos.Restaurants,
		read:                 make(chan struct{}),
		release:              make(chan struct{}),
	}
	wrapped := *repos
	wrapped.Restaurants = paused

	mem := newMemoryCache()
	svc := NewRestaurantService(&wrapped, NewActivityLogger(repos.Logs), nil, 2).(*restaurantService)
	svc.cache = mem

	type result struct {
		restaurant *model.Restaurant
		err        error
	}
	inFlight := make(chan result, 1)
	go func() {
		r, err := svc.Get(ctx, original.ID)
		inFlight <- result{r, err}
	}()

	<-paused.read
	_, err := svc.Update(ctx, original.ID, RestaurantInput{
		Name: "New", Rating: ratingPtr(4), ImageURL: "https://example.com/n.png",
	}, "admin@example.com")
	require.NoError(t, err)
	close(paused.release)

	res := <-inFlight
	require.NoError(t, res.err)
	assert.Equal(t, "Old", res.restaurant.Name)
	assert.False(t, mem.has(restaurantCacheKeyPrefix+original.ID))

	fresh, err := svc.Get(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", fresh.Name)
	assert.True(t, mem.has(restaurantCacheKeyPrefix+original.ID))
}
