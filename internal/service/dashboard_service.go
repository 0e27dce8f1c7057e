package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"foodadmin/internal/errors"
	"foodadmin/internal/model"
	"foodadmin/internal/repository"
)

// Stats holds the four dashboard counters.
type Stats struct {
	Users       int64 `json:"users"`
	Restaurants int64 `json:"restaurants"`
	Menus       int64 `json:"menus"`
	Items       int64 `json:"items"`
}

// Snapshot is everything the dashboard renders, read in one pass.
type Snapshot struct {
	Stats       Stats              `json:"stats"`
	Logs        []model.LogEntry   `json:"logs"`
	Restaurants []model.Restaurant `json:"restaurants"`
}

// DashboardService assembles dashboard views.
type DashboardService interface {
	Stats(ctx context.Context) (*Stats, error)
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type dashboardService struct {
	aggregation AggregationService
	restaurants repository.RestaurantRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(aggregation AggregationService, restaurants repository.RestaurantRepository) DashboardService {
	return &dashboardService{aggregation: aggregation, restaurants: restaurants}
}

// Stats reads the four counters concurrently.
func (s *dashboardService) Stats(ctx context.Context) (*Stats, error) {
	g, gctx := errgroup.WithContext(ctx)
	stats := s.countInto(gctx, g)
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrDashboardUnavailable, err)
	}
	return stats, nil
}

// Snapshot reads the counters, recent logs and the restaurant list
// concurrently. Any failed read fails the whole snapshot.
func (s *dashboardService) Snapshot(ctx context.Context) (*Snapshot, error) {
	ctx, span := tracer.Start(ctx, "dashboard.Snapshot")
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	stats := s.countInto(gctx, g)

	var (
		logs        []model.LogEntry
		restaurants []model.Restaurant
	)
	g.Go(func() error {
		var err error
		logs, err = s.aggregation.RecentLogs(gctx, model.RecentLogLimit)
		return err
	})
	g.Go(func() error {
		var err error
		restaurants, err = s.restaurants.List(gctx)
		if err != nil {
			return fmt.Errorf("list restaurants: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %w", errors.ErrDashboardUnavailable, err)
	}
	return &Snapshot{Stats: *stats, Logs: logs, Restaurants: restaurants}, nil
}

// countInto schedules the counter reads on g. The returned Stats is only
// complete after g.Wait succeeds.
func (s *dashboardService) countInto(ctx context.Context, g *errgroup.Group) *Stats {
	stats := &Stats{}
	counters := []struct {
		dst *int64
		fn  func(context.Context) (int64, error)
	}{
		{&stats.Users, s.aggregation.CountUsers},
		{&stats.Restaurants, s.aggregation.CountRestaurants},
		{&stats.Menus, s.aggregation.CountMenus},
		{&stats.Items, s.aggregation.CountMenuItems},
	}
	for _, c := range counters {
		g.Go(func() error {
			n, err := c.fn(ctx)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}
	return stats
}
