package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"taskhive.com/taskhive/internal/authz"
	"taskhive.com/taskhive/internal/constants"
)

const identityKey = "identity"

// Authenticate verifies the bearer token and stores the caller's
// Identity in the request context. Downstream code never touches the
// token; it sees only the verified (user id, role) pair.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token format")
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}
			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid user id in token")
			}
			roleClaim, _ := claims["role"].(string)
			role, ok := constants.ParseRole(roleClaim)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid role in token")
			}

			c.Set(identityKey, authz.Identity{UserID: userID, Role: role})
			return next(c)
		}
	}
}

// CurrentUser returns the Identity stored by Authenticate. The zero
// Identity matches no capability, so a missing value fails closed.
func CurrentUser(c echo.Context) authz.Identity {
	id, _ := c.Get(identityKey).(authz.Identity)
	return id
}
