package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"
)

func TestSaveWritesTimestampedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "audio")
	fs := NewFileStore(dir)

	path, err := fs.Save([]byte("mp3-data"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "mp3-data" {
		t.Errorf("content = %q", data)
	}

	name := filepath.Base(path)
	pattern := regexp.MustCompile(`^scolding-\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}-\d{3}Z\.mp3$`)
	if !pattern.MatchString(name) {
		t.Errorf("filename %q does not match %s", name, pattern)
	}
}

func TestTimestampIsSortable(t *testing.T) {
	earlier := timestamp(time.Date(2026, 8, 28, 9, 5, 3, 120e6, time.UTC))
	later := timestamp(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))
	if !(earlier < later) {
		t.Errorf("timestamps not lexically ordered: %q vs %q", earlier, later)
	}
	if earlier != "2026-08-28T09-05-03-120Z" {
		t.Errorf("timestamp = %q", earlier)
	}
}
