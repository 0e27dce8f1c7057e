package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodadmin/internal/auth"
	"foodadmin/internal/errors"
)

func newTestSeedService(t *testing.T) (SeedService, AggregationService) {
	t.Helper()
	repos := newTestRepos(t)
	activity := NewActivityLogger(repos.Logs)
	restaurants := NewRestaurantService(repos, activity, nil, 2)
	authService := NewAuthService(repos.Admins, auth.NewJWTService("test-secret"), auth.NewTokenStore(nil))
	return NewSeedService(repos, restaurants, authService, activity), NewAggregationService(repos, 2)
}

func TestSeedService_Seed(t *testing.T) {
	ctx := context.Background()
	svc, agg := newTestSeedService(t)
	outOfStock := false

	fixture := Fixture{
		Users: []FixtureUser{{Name: "Ann", Email: "ann@example.com"}, {Name: "Bob", Email: "bob@example.com"}},
		Restaurants: []FixtureRestaurant{
			{
				Name: "Pasta Place", Rating: 4.2, ImageURL: "https://example.com/p.png",
				Menus: []FixtureMenu{
					{Name: "Lunch", Items: []FixtureMenuItem{
						{Name: "Carbonara", BasePrice: decimal.RequireFromString("12.50")},
						{Name: "Lasagna", InStock: &outOfStock},
					}},
					{Name: "Drinks", Items: []FixtureMenuItem{{Name: "Water"}}},
				},
			},
			{Name: "Empty Diner", Rating: 1, ImageURL: "https://example.com/e.png"},
		},
		Admin: &FixtureAdmin{Email: "root@example.com", Password: "secret123", Name: "Root"},
	}

	result, err := svc.Seed(ctx, fixture, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Users: 2, Restaurants: 2, Menus: 2, Items: 3, Admin: true}, *result)

	items, err := agg.CountMenuItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), items)

	users, err := agg.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)

	logs, err := agg.RecentLogs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 3)

	again, err := svc.Seed(ctx, Fixture{Admin: fixture.Admin}, "")
	require.NoError(t, err)
	assert.False(t, again.Admin)
}

func TestSeedService_SeedRejectsInvalidRestaurant(t *testing.T) {
	svc, agg := newTestSeedService(t)

	result, err := svc.Seed(context.Background(), Fixture{
		Restaurants: []FixtureRestaurant{{Name: "Bad", Rating: 7, ImageURL: "https://example.com/b.png"}},
	}, "")
	assert.ErrorIs(t, err, errors.ErrInvalidRating)
	assert.Zero(t, result.Restaurants)

	n, err := agg.CountRestaurants(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
