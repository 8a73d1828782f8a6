package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem. Files live under
// root and are exposed under baseURL by the static file route.
type LocalStorage struct {
	root    string
	baseURL string
}

// NewLocalStorage creates a local filesystem storage rooted at root
func NewLocalStorage(root, baseURL string) *LocalStorage {
	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *LocalStorage) Save(path string, file io.Reader) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	out, err := os.Create(full)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return err
	}
	return out.Sync()
}

func (s *LocalStorage) Delete(path string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalStorage) URL(path string) string {
	return s.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// Root returns the directory local files are stored under
func (s *LocalStorage) Root() string {
	return s.root
}
