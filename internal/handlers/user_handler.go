package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kolbenev/twitter-clone/internal/models"
	"github.com/kolbenev/twitter-clone/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
	}
}

// RegisterRoutes registers user profile routes on the authenticated group,
// RegisterPublicRoutes the anonymous by-id lookup.
func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/me", h.GetMe)
}

func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/:id", h.GetUser)
}

// GetMe returns the authenticated user's profile with followers and following
func (h *UserHandler) GetMe(c echo.Context) error {
	user := getUserFromContext(c)

	view, err := h.buildUserView(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true, "user": view})
}

// GetUser returns any user's profile by id, no authentication required
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	view, err := h.buildUserView(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true, "user": view})
}

// buildUserView assembles the profile shape with both sides of the follow
// relation, exactly as loaded and in storage order.
func (h *UserHandler) buildUserView(user *models.User) (*models.UserView, error) {
	followers, err := h.followRepository.GetFollowers(user.ID)
	if err != nil {
		return nil, err
	}
	following, err := h.followRepository.GetFollowing(user.ID)
	if err != nil {
		return nil, err
	}

	view := &models.UserView{
		ID:        user.ID,
		Name:      user.Name,
		Followers: make([]models.UserCompact, 0, len(followers)),
		Following: make([]models.UserCompact, 0, len(following)),
	}
	for i := range followers {
		view.Followers = append(view.Followers, followers[i].ToCompact())
	}
	for i := range following {
		view.Following = append(view.Following, following[i].ToCompact())
	}
	return view, nil
}
