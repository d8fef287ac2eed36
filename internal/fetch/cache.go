package fetch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"topchart/internal/fileutil"
)

// PageCache is a saved copy of the listing page on disk. Users may also drop a
// manually saved page at Path when the site refuses scripted requests.
type PageCache struct {
	Path string
}

// Load returns the cached HTML. A missing or blank file reports ok=false.
func (c PageCache) Load() (string, bool, error) {
	if strings.TrimSpace(c.Path) == "" {
		return "", false, nil
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read page cache: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", false, nil
	}
	return string(data), true, nil
}

// Save atomically replaces the cached page. Concurrent writers are serialized
// through a lock file next to the cache.
func (c PageCache) Save(html string) error {
	if strings.TrimSpace(c.Path) == "" {
		return errors.New("page cache path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return fmt.Errorf("create page cache directory: %w", err)
	}

	lock := flock.New(c.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock page cache: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	if err := fileutil.WriteAtomic(c.Path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("save page cache: %w", err)
	}
	return nil
}
