package router

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodadmin/internal/auth"
	"foodadmin/internal/config"
	"foodadmin/internal/db"
	"foodadmin/internal/errors"
	"foodadmin/internal/handler"
	"foodadmin/internal/model"
	"foodadmin/internal/repository"
	"foodadmin/internal/service"
)

type testServer struct {
	e       *echo.Echo
	repos   *repository.Repositories
	token   string
	refresh string
}

type mockTokenStore struct {
	mock.Mock
}

func (m *mockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, adminID, email string, ttl time.Duration) error {
	return m.Called(ctx, tokenID, adminID, email, ttl).Error(0)
}

func (m *mockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return m.Called(ctx, tokenID).Error(0)
}

func (m *mockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, tokenID, ttl).Error(0)
}

func (m *mockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithStore(t, auth.NewTokenStore(nil))
}

func newTestServerWithStore(t *testing.T, tokenStore auth.TokenStoreInterface) *testServer {
	t.Helper()
	gdb, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := config.Default()
	cfg.RequestTimeout = 5 * time.Second
	repos := repository.NewGormRepositories(gdb)
	jwtService := auth.NewJWTService("test-secret")

	activity := service.NewActivityLogger(repos.Logs)
	aggregation := service.NewAggregationService(repos, 4)
	dashboard := service.NewDashboardService(aggregation, repos.Restaurants)
	restaurants := service.NewRestaurantService(repos, activity, nil, 4)
	authService := service.NewAuthService(repos.Admins, jwtService, tokenStore)
	seed := service.NewSeedService(repos, restaurants, authService, activity)

	e := echo.New()
	Register(e, cfg, Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Dashboard:   handler.NewDashboardHandler(dashboard, aggregation),
		Restaurants: handler.NewRestaurantHandler(restaurants, dashboard),
		Seed:        handler.NewSeedHandler(seed),
	}, jwtService, tokenStore)

	_, err = authService.Register(context.Background(), "root@example.com", "secret123", "Root")
	require.NoError(t, err)

	s := &testServer{e: e, repos: repos}
	rec := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "root@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login handler.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	s.token = login.AccessToken
	s.refresh = login.RefreshToken
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if s.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	s.token = ""

	for _, path := range []string{"/api/dashboard", "/api/stats", "/api/logs", "/api/restaurants", "/api/me"} {
		rec := s.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "UNAUTHORIZED", decode[errors.ErrorResponse](t, rec).Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "root@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[errors.ErrorResponse](t, rec).Code)

	rec = s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMe(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]map[string]interface{}](t, rec)
	assert.Equal(t, "root@example.com", body["token_claims"]["email"])
}

func TestCreateRestaurantFlow(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/restaurants", map[string]interface{}{
		"name": "Test Cafe", "rating": 3.5, "image_url": "https://example.com/x.png",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[handler.CreateRestaurantResponse](t, rec)
	require.NotNil(t, created.Restaurant)
	assert.Equal(t, "root@example.com", created.Restaurant.CreatedBy)
	require.NotNil(t, created.Dashboard)
	assert.Equal(t, int64(1), created.Dashboard.Stats.Restaurants)
	require.NotEmpty(t, created.Dashboard.Logs)
	assert.Contains(t, created.Dashboard.Logs[0].Message, "Test Cafe")

	rec = s.do(t, http.MethodGet, "/api/restaurants/"+created.Restaurant.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[service.RestaurantDetail](t, rec)
	assert.Equal(t, "Test Cafe", detail.Restaurant.Name)
	assert.Empty(t, detail.Menus)

	rec = s.do(t, http.MethodGet, "/api/restaurants", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Restaurant](t, rec), 1)
}

func TestCreateRestaurantValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     interface{}
		wantCode string
	}{
		{
			name:     "rating out of range",
			body:     map[string]interface{}{"name": "Cafe", "rating": 5.1, "image_url": "https://example.com/x.png"},
			wantCode: "INVALID_RATING",
		},
		{
			name:     "bad url",
			body:     map[string]interface{}{"name": "Cafe", "rating": 2, "image_url": "example.com/x.png"},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "malformed body",
			body:     "not an object",
			wantCode: "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec := s.do(t, http.MethodPost, "/api/restaurants", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decode[errors.ErrorResponse](t, rec).Code)

			n, err := s.repos.Restaurants.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestUpdateRestaurant(t *testing.T) {
	s := newTestServer(t)
	r := &model.Restaurant{Name: "Old", Rating: 1, ImageURL: "https://example.com/o.png"}
	require.NoError(t, s.repos.Restaurants.Create(context.Background(), r))

	rec := s.do(t, http.MethodPut, "/api/restaurants/"+r.ID, map[string]interface{}{
		"name": "New", "rating": 4, "image_url": "https://example.com/n.png",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[model.Restaurant](t, rec)
	assert.Equal(t, "New", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)

	rec = s.do(t, http.MethodPut, "/api/restaurants/missing", map[string]interface{}{
		"name": "New", "rating": 4, "image_url": "https://example.com/n.png",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RESTAURANT_NOT_FOUND", decode[errors.ErrorResponse](t, rec).Code)
}

func TestSeedThenDashboard(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/seed", service.Fixture{
		Users: []service.FixtureUser{{Name: "Ann", Email: "ann@example.com"}},
		Restaurants: []service.FixtureRestaurant{{
			Name: "Noodle Bar", Rating: 4, ImageURL: "https://example.com/n.png",
			Menus: []service.FixtureMenu{{Name: "Main", Items: []service.FixtureMenuItem{{Name: "Ramen"}, {}}}},
		}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[service.Snapshot](t, rec)
	assert.Equal(t, service.Stats{Users: 1, Restaurants: 1, Menus: 1, Items: 2}, snap.Stats)
	require.Len(t, snap.Restaurants, 1)

	rec = s.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, snap.Stats, decode[service.Stats](t, rec))

	rec = s.do(t, http.MethodGet, "/api/restaurants/"+snap.Restaurants[0].ID+"/menu-items", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode[[]model.MenuItem](t, rec)
	require.Len(t, items, 2)
	names := []string{items[0].Name, items[1].Name}
	assert.Contains(t, names, model.UnnamedItem)

	rec = s.do(t, http.MethodGet, "/api/logs?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.LogEntry](t, rec), 1)

	rec = s.do(t, http.MethodGet, "/api/logs?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/auth/logout", map[string]string{"refresh_token": "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_REFRESH_TOKEN", decode[errors.ErrorResponse](t, rec).Code)
}

func TestRefreshTokenRejectedAsBearer(t *testing.T) {
	s := newTestServer(t)
	require.NotEmpty(t, s.refresh)
	s.token = s.refresh

	for _, path := range []string{"/api/dashboard", "/api/me", "/api/restaurants"} {
		rec := s.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "INVALID_TOKEN_TYPE", decode[errors.ErrorResponse](t, rec).Code)
	}
}

func TestRevokedAccessTokenRejected(t *testing.T) {
	store := new(mockTokenStore)
	store.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, "root@example.com", auth.RefreshTokenExpiry).Return(nil)
	store.On("IsAccessTokenBlacklisted", mock.Anything, mock.Anything).Return(true, nil)
	s := newTestServerWithStore(t, store)

	rec := s.do(t, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_REVOKED", decode[errors.ErrorResponse](t, rec).Code)
	store.AssertExpectations(t)
}

func TestLogoutFailsWhenRevocationCannotBeStored(t *testing.T) {
	store := new(mockTokenStore)
	store.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, "root@example.com", auth.RefreshTokenExpiry).Return(nil)
	store.On("IsAccessTokenBlacklisted", mock.Anything, mock.Anything).Return(false, nil)
	store.On("DeleteRefreshToken", mock.Anything, mock.Anything).Return(nil)
	store.On("BlacklistAccessToken", mock.Anything, mock.Anything, mock.AnythingOfType("time.Duration")).
		Return(stderrors.New("connection refused"))
	s := newTestServerWithStore(t, store)

	rec := s.do(t, http.MethodPost, "/api/auth/logout", map[string]string{"refresh_token": s.refresh})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "LOGOUT_FAILED", decode[errors.ErrorResponse](t, rec).Code)
	store.AssertExpectations(t)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodPost, "/api/auth/refresh", map[string]string{"refresh_token": s.token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
