package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kolbenev/twitter-clone/internal/models"
	"github.com/kolbenev/twitter-clone/internal/repositories"
	"github.com/kolbenev/twitter-clone/internal/storage"
	"github.com/labstack/echo/v4"
)

// MediaHandler handles media file uploads
type MediaHandler struct {
	mediaRepository repositories.MediaRepository
	storage         storage.Storage
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaRepo repositories.MediaRepository, store storage.Storage) *MediaHandler {
	return &MediaHandler{
		mediaRepository: mediaRepo,
		storage:         store,
	}
}

// RegisterRoutes registers media-related routes
func (h *MediaHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/", h.UploadMedia)
}

// UploadMedia stores an uploaded file under the owner's namespace and inserts
// an unattached media row. The row is claimed later at tweet creation.
func (h *MediaHandler) UploadMedia(c echo.Context) error {
	user := getUserFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		slog.Warn("media upload without a file", "user", user.Name, "user_id", user.ID)
		return echo.NewHTTPError(http.StatusBadRequest, "No file upload")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	ext := filepath.Ext(fileHeader.Filename)
	filename := uuid.New().String() + ext
	storagePath := path.Join(fmt.Sprintf("%d", user.ID), filename)

	if err := h.storage.Save(storagePath, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	media := &models.Media{
		FilePath: storagePath,
		FileURL:  h.storage.URL(storagePath),
	}
	if err := h.mediaRepository.CreateMedia(media); err != nil {
		// Row insert failed, clean up the blob we just wrote.
		if delErr := h.storage.Delete(storagePath); delErr != nil {
			slog.Error("failed to clean up blob after insert failure", "path", storagePath, "error", delErr)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	slog.Info("media uploaded", "user", user.Name, "user_id", user.ID, "path", storagePath, "media_id", media.ID)

	return c.JSON(http.StatusOK, echo.Map{"result": true, "media_id": media.ID})
}
