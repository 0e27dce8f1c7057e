package router

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"foodadmin/internal/auth"
	"foodadmin/internal/config"
	"foodadmin/internal/errors"
	"foodadmin/internal/handler"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth        *handler.AuthHandler
	Dashboard   *handler.DashboardHandler
	Restaurants *handler.RestaurantHandler
	Seed        *handler.SeedHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	h Handlers,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	if cfg.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeout(cfg.RequestTimeout))
	}

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)

	// Secured routes (require JWT authentication)
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey: jwtService.Secret(),
			ContextKey: handler.ContextKeyUser,
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "missing or invalid access token",
					Code:  "UNAUTHORIZED",
				})
			},
		}),
		requireAccessToken(tokenStore),
	)

	secured.GET("/me", h.Auth.Me)
	secured.POST("/auth/logout", h.Auth.Logout)

	// Dashboard routes
	secured.GET("/dashboard", h.Dashboard.GetDashboard)
	secured.GET("/stats", h.Dashboard.GetStats)
	secured.GET("/logs", h.Dashboard.GetLogs)

	// Restaurant routes
	secured.GET("/restaurants", h.Restaurants.ListRestaurants)
	secured.POST("/restaurants", h.Restaurants.CreateRestaurant)
	secured.GET("/restaurants/:id", h.Restaurants.GetRestaurant)
	secured.PUT("/restaurants/:id", h.Restaurants.UpdateRestaurant)
	secured.GET("/restaurants/:id/menu-items", h.Restaurants.ListMenuItems)

	if h.Seed != nil {
		secured.POST("/seed", h.Seed.Seed)
	}
}

// requireAccessToken refuses bearer tokens that are not access tokens and
// access tokens revoked by logout. A failed revocation lookup is logged and
// the token accepted.
func requireAccessToken(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(handler.ContextKeyUser).(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "missing or invalid access token",
					Code:  "UNAUTHORIZED",
				})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || claims.Type != auth.TokenTypeAccess || claims.ID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "bearer token is not an access token",
					Code:  "INVALID_TOKEN_TYPE",
				})
			}
			ctx := c.Request().Context()
			revoked, err := tokenStore.IsAccessTokenBlacklisted(ctx, claims.ID)
			if err != nil {
				slog.WarnContext(ctx, "revocation check failed", slog.String("jti", claims.ID), slog.Any("error", err))
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "access token has been revoked",
					Code:  "TOKEN_REVOKED",
				})
			}
			return next(c)
		}
	}
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			slog.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
