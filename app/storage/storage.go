// Package storage persists uploaded application documents. Stored files are
// write-once: nothing in the system overwrites or deletes them.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileStore saves an uploaded document and returns the path it is served
// back under.
type FileStore interface {
	Save(fh *multipart.FileHeader) (string, error)
}

// DiskStore writes uploads beneath dir. Names are prefixed with the upload
// time and a uuid fragment so two applicants sending "id.jpg" never collide.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) Save(fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(), uuid.NewString()[:8], filepath.Base(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	// The dashboard links documents relative to the server root.
	return path.Join("uploads", name), nil
}
