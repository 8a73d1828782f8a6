package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/kolbenev/twitter-clone/internal/models"
	"github.com/kolbenev/twitter-clone/internal/router"
	"github.com/kolbenev/twitter-clone/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServer is the app wired against an in-memory database and a
// temp-dir local blob store.
type testServer struct {
	e        *echo.Echo
	db       *gorm.DB
	store    *storage.LocalStorage
	mediaDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mediaDir := t.TempDir()
	store := storage.NewLocalStorage(mediaDir, "http://127.0.0.1/medias")

	e := echo.New()
	router.SetupRoutes(e, db, store)

	return &testServer{e: e, db: db, store: store, mediaDir: mediaDir}
}

func (s *testServer) createUser(t *testing.T, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:   name,
		APIKey: fmt.Sprintf("key-%s", name),
	}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

// request performs an HTTP request against the app. A non-empty apiKey is
// sent in the api-key header; a non-nil body is encoded as JSON.
func (s *testServer) request(t *testing.T, method, path, apiKey string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if apiKey != "" {
		req.Header.Set("api-key", apiKey)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// upload performs a multipart media upload with the given file content
func (s *testServer) upload(t *testing.T, apiKey, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/medias/", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set("api-key", apiKey)

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a JSON response body into a generic map
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
