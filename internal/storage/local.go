package storage

import (
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes objects to a directory on disk. The directory is served
// statically by the HTTP server under baseURL.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save stores the content under a fresh UUID name, keeping the original
// extension so content types survive static serving.
func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return s.baseURL + "/" + name, nil
}

func (s *LocalStore) Delete(url string) error {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return errors.New("url not managed by this store")
	}
	name := path.Base(url)
	return os.Remove(filepath.Join(s.dir, name))
}

// Dir is the directory static file serving should expose.
func (s *LocalStore) Dir() string {
	return s.dir
}
