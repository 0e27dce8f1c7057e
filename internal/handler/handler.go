package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"foodadmin/internal/auth"
	"foodadmin/internal/errors"
)

// ContextKeyUser is where the JWT middleware stores the parsed token.
const ContextKeyUser = "user"

// claimsFromContext returns the authenticated admin's claims, or nil on
// unauthenticated routes.
func claimsFromContext(c echo.Context) *auth.Claims {
	token, ok := c.Get(ContextKeyUser).(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	claims, _ := token.Claims.(*auth.Claims)
	return claims
}

// adminEmail returns the caller's email, empty when unknown.
func adminEmail(c echo.Context) string {
	if claims := claimsFromContext(c); claims != nil {
		return claims.Email
	}
	return ""
}

func httpError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
