package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mx-space/portfolio/internal/config"
)

const (
	DriverLocal = config.StorageLocal
	DriverS3    = config.StorageS3
)

var ErrNotFound = errors.New("storage: object not found")

// Backend stores uploaded media under slash-separated keys such as
// "projects/3f2c9d1e8a7b6c5d4e.png".
type Backend interface {
	Name() string
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// New picks the backend named by cfg.Storage.Driver.
func New(cfg *config.AppConfig) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)) {
	case "", DriverLocal:
		return NewLocal(cfg.MediaDir(), MediaPrefix), nil
	case DriverS3:
		return NewS3(cfg.Storage.S3)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
