package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/kolbenev/twitter-clone/internal/models"
	"github.com/kolbenev/twitter-clone/internal/repositories"
	"github.com/kolbenev/twitter-clone/internal/storage"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// TweetHandler handles feed reads and tweet create/delete
type TweetHandler struct {
	tweetRepository repositories.TweetRepository
	likeRepository  repositories.LikeRepository
	mediaRepository repositories.MediaRepository
	userRepository  repositories.UserRepository
	storage         storage.Storage
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(
	tweetRepo repositories.TweetRepository,
	likeRepo repositories.LikeRepository,
	mediaRepo repositories.MediaRepository,
	userRepo repositories.UserRepository,
	store storage.Storage,
) *TweetHandler {
	return &TweetHandler{
		tweetRepository: tweetRepo,
		likeRepository:  likeRepo,
		mediaRepository: mediaRepo,
		userRepository:  userRepo,
		storage:         store,
	}
}

// RegisterRoutes registers tweet-related routes
func (h *TweetHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.GetFeed)
	g.POST("/", h.PostTweet)
	g.DELETE("/:id", h.DeleteTweet)
}

// GetFeed returns every tweet with author, likes and attachments inlined.
// Tweets come back in storage order; callers snapshot the whole structure.
func (h *TweetHandler) GetFeed(c echo.Context) error {
	tweets, err := h.tweetRepository.GetAllTweets()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	tweetIDs := make([]uint, len(tweets))
	authorIDSet := make(map[uint]bool)
	for i, t := range tweets {
		tweetIDs[i] = t.ID
		authorIDSet[t.AuthorID] = true
	}
	authorIDs := make([]uint, 0, len(authorIDSet))
	for id := range authorIDSet {
		authorIDs = append(authorIDs, id)
	}

	authors, err := h.userRepository.GetUsersByIDs(authorIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	authorMap := make(map[uint]models.UserCompact, len(authors))
	for i := range authors {
		authorMap[authors[i].ID] = authors[i].ToCompact()
	}

	likes, err := h.likeRepository.GetLikesByTweetIDs(tweetIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	likeMap := make(map[uint][]models.LikeView)
	for _, l := range likes {
		likeMap[l.TweetID] = append(likeMap[l.TweetID], models.LikeView{UserID: l.UserID, Name: l.Name})
	}

	media, err := h.mediaRepository.GetMediaByTweetIDs(tweetIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	attachmentMap := make(map[uint][]string)
	for _, m := range media {
		if m.TweetID != nil {
			attachmentMap[*m.TweetID] = append(attachmentMap[*m.TweetID], m.FileURL)
		}
	}

	views := make([]models.TweetView, 0, len(tweets))
	for _, t := range tweets {
		view := models.TweetView{
			ID:          t.ID,
			Content:     t.Content,
			Attachments: attachmentMap[t.ID],
			Author:      authorMap[t.AuthorID],
			Likes:       likeMap[t.ID],
		}
		if view.Attachments == nil {
			view.Attachments = []string{}
		}
		if view.Likes == nil {
			view.Likes = []models.LikeView{}
		}
		views = append(views, view)
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true, "tweets": views})
}

// PostTweet creates a tweet for the authenticated user and claims any
// pre-uploaded media. Media ids that resolve to nothing are skipped.
func (h *TweetHandler) PostTweet(c echo.Context) error {
	user := getUserFromContext(c)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	// Emptiness is judged on the payload object itself, not on its fields:
	// {"tweet_data": ""} is a non-empty payload and creates an empty tweet.
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if len(payload) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Tweet is empty")
	}

	var req models.CreateTweetRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Tweet content must be at most 280 characters")
	}

	tweet := &models.Tweet{
		AuthorID: user.ID,
		Content:  req.TweetData,
	}
	if err := h.tweetRepository.CreateTweetWithMedia(tweet, req.TweetMediaIDs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true, "tweet_id": tweet.ID})
}

// DeleteTweet removes the authenticated user's own tweet, its likes and media
// rows, and the media blobs. Blob removal is best-effort and sits outside the
// row transaction.
func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	user := getUserFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid tweet ID")
	}

	tweet, err := h.tweetRepository.GetTweetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if tweet.AuthorID != user.ID {
		return echo.NewHTTPError(http.StatusForbidden, "The user is not the author of the tweet")
	}

	media, err := h.mediaRepository.GetMediaByTweetIDs([]uint{tweet.ID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	for _, m := range media {
		if err := h.storage.Delete(m.FilePath); err != nil {
			slog.Warn("failed to delete media blob", "path", m.FilePath, "error", err)
		}
	}

	if err := h.tweetRepository.DeleteTweetCascade(tweet.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	slog.Info("tweet deleted", "tweet_id", tweet.ID, "author", user.Name)

	return c.JSON(http.StatusOK, echo.Map{"result": true})
}
