package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"foodadmin/internal/model"
	"foodadmin/internal/repository"
)

const (
	// DefaultConcurrency bounds each traversal stage when no limit is configured.
	DefaultConcurrency = 8
	// MaxRecentLogs caps RecentLogs requests.
	MaxRecentLogs = 100
)

var tracer = otel.Tracer("foodadmin/internal/service")

// AggregationService computes dashboard counts from the live store.
// Nothing is cached: every call re-reads.
type AggregationService interface {
	CountUsers(ctx context.Context) (int64, error)
	CountRestaurants(ctx context.Context) (int64, error)
	CountMenus(ctx context.Context) (int64, error)
	CountMenuItems(ctx context.Context) (int64, error)
	RecentLogs(ctx context.Context, n int) ([]model.LogEntry, error)
}

type aggregationService struct {
	repos       *repository.Repositories
	concurrency int
}

// NewAggregationService creates an aggregation service whose nested walks
// run at most concurrency reads at a time per stage.
func NewAggregationService(repos *repository.Repositories, concurrency int) AggregationService {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &aggregationService{repos: repos, concurrency: concurrency}
}

func (s *aggregationService) CountUsers(ctx context.Context) (int64, error) {
	n, err := s.repos.Users.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (s *aggregationService) CountRestaurants(ctx context.Context) (int64, error) {
	n, err := s.repos.Restaurants.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count restaurants: %w", err)
	}
	return n, nil
}

// CountMenus sums the menu count of every restaurant.
func (s *aggregationService) CountMenus(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "aggregation.CountMenus")
	defer span.End()

	restaurantIDs, err := s.repos.Restaurants.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("count menus: %w", err)
	}
	counts, err := fanOut(ctx, s.concurrency, restaurantIDs, s.repos.Menus.CountByRestaurant)
	if err != nil {
		return 0, fmt.Errorf("count menus: %w", err)
	}
	total := sum(counts)
	span.SetAttributes(attribute.Int("restaurants", len(restaurantIDs)), attribute.Int64("menus", total))
	return total, nil
}

// CountMenuItems walks restaurants → menus → items and sums the item counts.
func (s *aggregationService) CountMenuItems(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "aggregation.CountMenuItems")
	defer span.End()

	restaurantIDs, err := s.repos.Restaurants.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	menuIDs, err := s.menuIDs(ctx, restaurantIDs)
	if err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	counts, err := fanOut(ctx, s.concurrency, menuIDs, s.repos.MenuItems.CountByMenu)
	if err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	total := sum(counts)
	span.SetAttributes(attribute.Int("menus", len(menuIDs)), attribute.Int64("items", total))
	return total, nil
}

// menuIDs is the restaurants → menus stage.
func (s *aggregationService) menuIDs(ctx context.Context, restaurantIDs []string) ([]string, error) {
	perRestaurant, err := fanOut(ctx, s.concurrency, restaurantIDs, s.repos.Menus.ListByRestaurant)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, menus := range perRestaurant {
		for _, m := range menus {
			ids = append(ids, m.ID)
		}
	}
	return ids, nil
}

// RecentLogs returns the newest n log entries. n <= 0 means the dashboard
// default of 10; larger requests are capped.
func (s *aggregationService) RecentLogs(ctx context.Context, n int) ([]model.LogEntry, error) {
	if n <= 0 {
		n = model.RecentLogLimit
	}
	if n > MaxRecentLogs {
		n = MaxRecentLogs
	}
	entries, err := s.repos.Logs.ListRecent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("recent logs: %w", err)
	}
	return entries, nil
}

// fanOut applies fn to every input with at most limit calls in flight and
// returns the results in input order. The first error cancels the rest and
// no partial results are returned.
func fanOut[T, R any](ctx context.Context, limit int, inputs []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, in := range inputs {
		g.Go(func() error {
			r, err := fn(ctx, in)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func sum(counts []int64) int64 {
	var total int64
	for _, c := range counts {
		total += c
	}
	return total
}
