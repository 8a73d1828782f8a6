package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kolbenev/twitter-clone/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadMedia(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "alice")

	rec := s.upload(t, alice.APIKey, "image.jpg", []byte("test content"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["result"])
	mediaID := uint(body["media_id"].(float64))
	require.NotZero(t, mediaID)

	var media models.Media
	require.NoError(t, s.db.First(&media, mediaID).Error)
	assert.Nil(t, media.TweetID)

	// Files land in the owner's namespace with the extension preserved
	ownerPrefix := fmt.Sprintf("%d/", alice.ID)
	assert.True(t, strings.HasPrefix(media.FilePath, ownerPrefix))
	assert.True(t, strings.HasSuffix(media.FilePath, ".jpg"))
	assert.Equal(t, "http://127.0.0.1/medias/"+media.FilePath, media.FileURL)

	content, err := os.ReadFile(filepath.Join(s.mediaDir, filepath.FromSlash(media.FilePath)))
	require.NoError(t, err)
	assert.Equal(t, []byte("test content"), content)
}

func TestUploadMediaUniqueFilenames(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "alice")

	rec := s.upload(t, alice.APIKey, "same.png", []byte("one"))
	require.Equal(t, http.StatusOK, rec.Code)
	first := uint(decode(t, rec)["media_id"].(float64))

	rec = s.upload(t, alice.APIKey, "same.png", []byte("two"))
	require.Equal(t, http.StatusOK, rec.Code)
	second := uint(decode(t, rec)["media_id"].(float64))

	var a, b models.Media
	require.NoError(t, s.db.First(&a, first).Error)
	require.NoError(t, s.db.First(&b, second).Error)
	assert.NotEqual(t, a.FilePath, b.FilePath)
}

func TestUploadMediaWithoutFile(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "alice")

	req := httptest.NewRequest(http.MethodPost, "/api/medias/", nil)
	req.Header.Set("api-key", alice.APIKey)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file upload")
}

func TestUploadMediaInvalidAPIKey(t *testing.T) {
	s := newTestServer(t)

	rec := s.upload(t, "nope", "image.jpg", []byte("x"))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found, invalid API key")
}
