package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kolbenev/twitter-clone/internal/models"
	"github.com/kolbenev/twitter-clone/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterRoutes registers follow-related routes
func (h *FollowHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/:id/follow", h.FollowUser)
	g.DELETE("/:id/follow", h.UnfollowUser)
}

// resolveTarget looks up the user the :id path parameter points at
func (h *FollowHandler) resolveTarget(c echo.Context) (*models.User, error) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	target, err := h.userRepository.GetUserByID(uint(targetID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return target, nil
}

// FollowUser subscribes the authenticated user to the target user.
// A repeated follow is a hard 400, never a silent no-op.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	user := getUserFromContext(c)

	target, err := h.resolveTarget(c)
	if err != nil {
		return err
	}

	if user.ID == target.ID {
		return echo.NewHTTPError(http.StatusBadRequest, "Trying to subscribe to yourself")
	}

	isFollowing, err := h.followRepository.IsFollowing(user.ID, target.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isFollowing {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s is already subscribed to %s", user.Name, target.Name))
	}

	follow := &models.Follow{
		FollowerID:  user.ID,
		FollowingID: target.ID,
	}
	if err := h.followRepository.CreateFollow(follow); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	slog.Info("user subscribed", "follower", user.Name, "following", target.Name)

	return c.JSON(http.StatusOK, echo.Map{"result": true})
}

// UnfollowUser removes the subscription to the target user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	user := getUserFromContext(c)

	target, err := h.resolveTarget(c)
	if err != nil {
		return err
	}

	if err := h.followRepository.DeleteFollow(user.ID, target.ID); err != nil {
		if errors.Is(err, repositories.ErrFollowNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("%s doesn't follow %s", user.Name, target.Name))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	slog.Info("user unfollowed", "follower", user.Name, "following", target.Name)

	return c.JSON(http.StatusOK, echo.Map{"result": true})
}
