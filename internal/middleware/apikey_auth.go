package middleware

import (
	"errors"
	"net/http"

	"github.com/kolbenev/twitter-clone/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserContextKey is the Echo context key the authenticated user is stored under
const UserContextKey = "currentUser"

// APIKeyAuth resolves the api-key header to a user and stores it in the
// request context. Requests without a matching key are rejected with 404.
func APIKeyAuth(userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get("api-key")

			user, err := userRepo.GetUserByAPIKey(apiKey)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusNotFound, "User not found, invalid API key")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
