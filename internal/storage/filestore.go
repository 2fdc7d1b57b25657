package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore saves synthesized audio to a local directory for debugging.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "public/audio"
	}
	return &FileStore{Dir: dir}
}

// Save writes data to {dir}/scolding-<timestamp>.mp3 and returns the
// path. The timestamp is ISO 8601 with ':' and '.' replaced by '-' so
// filenames stay lexically sortable.
func (fs *FileStore) Save(data []byte) (string, error) {
	if err := os.MkdirAll(fs.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(fs.Dir, fmt.Sprintf("scolding-%s.mp3", timestamp(time.Now())))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func timestamp(t time.Time) string {
	iso := t.UTC().Format("2006-01-02T15:04:05.000Z")
	return strings.NewReplacer(":", "-", ".", "-").Replace(iso)
}
