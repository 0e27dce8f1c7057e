package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"foodadmin/internal/model"
	"foodadmin/internal/repository"
)

// Fixture is a batch of demo data loaded into an empty store.
type Fixture struct {
	Users       []FixtureUser       `json:"users"`
	Restaurants []FixtureRestaurant `json:"restaurants"`
	Admin       *FixtureAdmin       `json:"admin,omitempty"`
}

// FixtureUser is a platform user to create.
type FixtureUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FixtureAdmin is the dashboard account to create.
type FixtureAdmin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// FixtureRestaurant is a restaurant with its menus.
type FixtureRestaurant struct {
	Name     string        `json:"name"`
	Rating   float64       `json:"rating"`
	ImageURL string        `json:"image_url"`
	Menus    []FixtureMenu `json:"menus"`
}

// FixtureMenu is a menu with its items.
type FixtureMenu struct {
	Name  string            `json:"name"`
	Items []FixtureMenuItem `json:"items"`
}

// FixtureMenuItem is one menu item. A missing in_stock means in stock.
type FixtureMenuItem struct {
	Name         string                     `json:"name"`
	Description  string                     `json:"description"`
	ImageURL     string                     `json:"image_url"`
	BasePrice    decimal.Decimal            `json:"base_price"`
	Category     string                     `json:"category"`
	InStock      *bool                      `json:"in_stock"`
	OptionPrices map[string]decimal.Decimal `json:"option_prices"`
	Options      []string                   `json:"options"`
}

// SeedResult counts what a seed run created.
type SeedResult struct {
	Users       int  `json:"users"`
	Restaurants int  `json:"restaurants"`
	Menus       int  `json:"menus"`
	Items       int  `json:"items"`
	Admin       bool `json:"admin_created"`
}

// SeedService loads fixtures.
type SeedService interface {
	Seed(ctx context.Context, fixture Fixture, adminEmail string) (*SeedResult, error)
}

type seedService struct {
	repos       *repository.Repositories
	restaurants RestaurantService
	auth        AuthService
	activity    ActivityLogger
}

// NewSeedService creates a seed service. Restaurants go through the
// restaurant service so fixture data obeys the same validation as admin
// input.
func NewSeedService(repos *repository.Repositories, restaurants RestaurantService, auth AuthService, activity ActivityLogger) SeedService {
	return &seedService{repos: repos, restaurants: restaurants, auth: auth, activity: activity}
}

// Seed creates every fixture record. It stops at the first failure and
// reports what was created up to that point.
func (s *seedService) Seed(ctx context.Context, fixture Fixture, adminEmail string) (*SeedResult, error) {
	result := &SeedResult{}

	if a := fixture.Admin; a != nil {
		_, err := s.auth.Register(ctx, a.Email, a.Password, a.Name)
		switch {
		case err == nil:
			result.Admin = true
		case stderrors.Is(err, ErrAdminAlreadyExists):
			slog.InfoContext(ctx, "seed admin already exists", "email", a.Email)
		default:
			return result, fmt.Errorf("seed admin: %w", err)
		}
	}

	for _, u := range fixture.Users {
		if err := s.repos.Users.Create(ctx, &model.User{Name: u.Name, Email: u.Email}); err != nil {
			return result, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		result.Users++
	}

	for _, fr := range fixture.Restaurants {
		rating := fr.Rating
		restaurant, err := s.restaurants.Create(ctx, RestaurantInput{
			Name:     fr.Name,
			Rating:   &rating,
			ImageURL: fr.ImageURL,
		}, adminEmail)
		if err != nil {
			return result, fmt.Errorf("seed restaurant %q: %w", fr.Name, err)
		}
		result.Restaurants++

		for _, fm := range fr.Menus {
			menu := &model.Menu{RestaurantID: restaurant.ID, Name: fm.Name}
			if err := s.repos.Menus.Create(ctx, menu); err != nil {
				return result, fmt.Errorf("seed menu %q: %w", fm.Name, err)
			}
			result.Menus++

			for _, fi := range fm.Items {
				if err := s.repos.MenuItems.Create(ctx, fi.toModel(menu.ID)); err != nil {
					return result, fmt.Errorf("seed menu item %q: %w", fi.Name, err)
				}
				result.Items++
			}
		}
	}

	if err := s.activity.LogActivity(ctx, Activity{
		Message: fmt.Sprintf("Seeded %d restaurants, %d menus, %d items", result.Restaurants, result.Menus, result.Items),
		Admin:   adminEmail,
		Details: map[string]any{"users": result.Users},
	}); err != nil {
		slog.WarnContext(ctx, "activity log write failed", "error", err)
	}
	return result, nil
}

func (fi FixtureMenuItem) toModel(menuID string) *model.MenuItem {
	inStock := fi.InStock == nil || *fi.InStock
	return &model.MenuItem{
		MenuID:       menuID,
		Name:         fi.Name,
		Description:  fi.Description,
		ImageURL:     fi.ImageURL,
		BasePrice:    fi.BasePrice,
		Category:     fi.Category,
		InStock:      inStock,
		OptionPrices: fi.OptionPrices,
		Options:      fi.Options,
	}
}
