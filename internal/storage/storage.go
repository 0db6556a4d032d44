// Package storage saves uploaded recipe images and returns the location
// that gets recorded on the recipe.
package storage

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/franciscosanchezn/gin-recipe-catalog/internal/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// AllowImage lists the accepted upload content types
var AllowImage = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// sniffLen is how many leading bytes are read for content detection
const sniffLen = 3072

// ImageStore persists an uploaded image
type ImageStore interface {
	// Save stores the content of r under a name derived from filename and
	// returns the path or URL to record on the recipe
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// objectName prefixes the base name of filename with a random id so
// uploads sharing a name do not overwrite each other
func objectName(filename string) string {
	base := filepath.Base(filepath.Clean("/" + filename))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "/" || base == "." {
		base = "image"
	}
	return uuid.New().String() + "-" + base
}

// sniff detects the content type of r and returns a reader that still
// yields the full content
func sniff(r io.Reader) (*mimetype.MIME, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, nil, err
	}
	head = head[:n]
	return mimetype.Detect(head), io.MultiReader(bytes.NewReader(head), r), nil
}

// checkImage rejects anything that is not one of AllowImage
func checkImage(mtype *mimetype.MIME) error {
	if !mimetype.EqualsAny(mtype.String(), AllowImage...) {
		return models.NewValidationError("unsupported image type "+mtype.String(), "image")
	}
	return nil
}
