package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// LocalStore writes images into a directory on disk
type LocalStore struct {
	Dir string
}

// NewLocalStore returns a LocalStore rooted at dir
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{Dir: dir}
}

func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	mtype, body, err := sniff(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if err := checkImage(mtype); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(s.Dir, objectName(filename))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close image file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"path":         path,
		"content_type": mtype.String(),
	}).Info("Image saved")
	return path, nil
}
