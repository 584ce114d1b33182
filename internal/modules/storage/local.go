package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// MediaPrefix is the public route local files are served from.
const MediaPrefix = "/media"

// Local keeps files in a directory on disk.
type Local struct {
	dir       string
	urlPrefix string
}

func NewLocal(dir, urlPrefix string) *Local {
	return &Local{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (l *Local) Name() string { return DriverLocal }

func (l *Local) Dir() string { return l.dir }

func (l *Local) Save(ctx context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	target, err := l.Path(key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("write media file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return l.urlPrefix + "/" + key, nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	target, err := l.Path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Path maps a key to its file, refusing keys that escape the media dir.
func (l *Local) Path(key string) (string, error) {
	clean := path.Clean("/" + strings.TrimSpace(key))
	if clean == "/" {
		return "", fmt.Errorf("invalid media key %q", key)
	}
	for _, seg := range strings.Split(strings.TrimPrefix(clean, "/"), "/") {
		if !isSafeSegment(seg) || seg == "." || seg == ".." {
			return "", fmt.Errorf("invalid media key %q", key)
		}
	}
	return filepath.Join(l.dir, filepath.FromSlash(clean)), nil
}
