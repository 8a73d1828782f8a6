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

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository  repositories.LikeRepository
	tweetRepository repositories.TweetRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, tweetRepo repositories.TweetRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:  likeRepo,
		tweetRepository: tweetRepo,
	}
}

// RegisterRoutes registers like-related routes
func (h *LikeHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/:id/likes", h.LikeTweet)
	g.DELETE("/:id/likes", h.UnlikeTweet)
}

// resolveTweet looks up the tweet the :id path parameter points at
func (h *LikeHandler) resolveTweet(c echo.Context) (*models.Tweet, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid tweet ID")
	}

	tweet, err := h.tweetRepository.GetTweetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return tweet, nil
}

// LikeTweet adds the authenticated user's like to a tweet. A second like on
// the same tweet is a hard 400.
func (h *LikeHandler) LikeTweet(c echo.Context) error {
	user := getUserFromContext(c)

	tweet, err := h.resolveTweet(c)
	if err != nil {
		return err
	}

	hasLiked, err := h.likeRepository.HasUserLikedTweet(user.ID, tweet.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if hasLiked {
		return echo.NewHTTPError(http.StatusBadRequest, "Already liked the tweet")
	}

	like := &models.Like{
		UserID:  user.ID,
		TweetID: tweet.ID,
	}
	if err := h.likeRepository.CreateLike(like); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true})
}

// UnlikeTweet removes the authenticated user's like from a tweet
func (h *LikeHandler) UnlikeTweet(c echo.Context) error {
	user := getUserFromContext(c)

	tweet, err := h.resolveTweet(c)
	if err != nil {
		return err
	}

	if err := h.likeRepository.DeleteLike(user.ID, tweet.ID); err != nil {
		if errors.Is(err, repositories.ErrLikeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Like not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true})
}
