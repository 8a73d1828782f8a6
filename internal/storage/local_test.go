package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root, "http://127.0.0.1/medias/")

	err := store.Save("7/photo.jpg", strings.NewReader("bytes"))
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, "7", "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(content))

	require.NoError(t, store.Delete("7/photo.jpg"))
	_, err = os.Stat(filepath.Join(root, "7", "photo.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageDeleteMissingFile(t *testing.T) {
	store := NewLocalStorage(t.TempDir(), "http://127.0.0.1/medias")

	// Absence is not an error
	assert.NoError(t, store.Delete("nope/missing.png"))
}

func TestLocalStorageURL(t *testing.T) {
	store := NewLocalStorage(t.TempDir(), "http://127.0.0.1/medias/")

	assert.Equal(t, "http://127.0.0.1/medias/7/a.png", store.URL("7/a.png"))
	assert.Equal(t, "http://127.0.0.1/medias/7/a.png", store.URL("/7/a.png"))
}
