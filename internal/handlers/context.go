package handlers

import (
	"github.com/kolbenev/twitter-clone/internal/middleware"
	"github.com/kolbenev/twitter-clone/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserFromContext returns the user resolved by the api-key middleware
func getUserFromContext(c echo.Context) *models.User {
	user, ok := c.Get(middleware.UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
