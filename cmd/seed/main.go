package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"foodadmin/internal/auth"
	"foodadmin/internal/config"
	"foodadmin/internal/logging"
	"foodadmin/internal/repository"
	"foodadmin/internal/service"
	"foodadmin/internal/store"
)

const fetchTimeout = 30 * time.Second

func main() {
	source := flag.String("fixture", "cmd/seed/fixture.json", "fixture file path or http(s) URL")
	actor := flag.String("admin", "", "admin email recorded on seeded restaurants and log entries")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Setup(os.Stderr, cfg.LogLevel)

	ctx := context.Background()
	repos, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	err = run(ctx, repos, seedOptions{
		source:      *source,
		admin:       *actor,
		jwtSecret:   cfg.JWTSecret,
		concurrency: cfg.AggregationConcurrency,
	})
	if cerr := closeStore(); cerr != nil {
		log.Printf("Failed to close store: %v", cerr)
	}
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}

type seedOptions struct {
	source      string
	admin       string
	jwtSecret   string
	concurrency int
}

// run loads the fixture and writes it to repos.
func run(ctx context.Context, repos *repository.Repositories, opts seedOptions) error {
	fixture, err := loadFixture(ctx, opts.source)
	if err != nil {
		return fmt.Errorf("load fixture: %w", err)
	}
	log.Printf("Loaded fixture from %s: %d users, %d restaurants", opts.source, len(fixture.Users), len(fixture.Restaurants))

	email := opts.admin
	if email == "" && fixture.Admin != nil {
		email = fixture.Admin.Email
	}

	activity := service.NewActivityLogger(repos.Logs)
	restaurants := service.NewRestaurantService(repos, activity, nil, opts.concurrency)
	authService := service.NewAuthService(repos.Admins, auth.NewJWTService(opts.jwtSecret), auth.NewTokenStore(nil))
	seeder := service.NewSeedService(repos, restaurants, authService, activity)

	result, err := seeder.Seed(ctx, *fixture, email)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	slog.Info("seed completed",
		"users", result.Users,
		"restaurants", result.Restaurants,
		"menus", result.Menus,
		"items", result.Items,
		"admin_created", result.Admin,
	)
	return nil
}

// loadFixture reads a fixture from a local file or an http(s) URL.
func loadFixture(ctx context.Context, source string) (*service.Fixture, error) {
	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch fixture: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fixture source returned status: %d", resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		r = f
	}
	defer r.Close()

	var fixture service.Fixture
	if err := json.NewDecoder(r).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fixture, nil
}
