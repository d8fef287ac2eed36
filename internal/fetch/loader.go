package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"topchart/internal/logging"
)

// ErrNoCachedPage is returned in offline mode when nothing is cached.
var ErrNoCachedPage = errors.New("no cached page available")

// Origin tells where LoadOrFetch got the page from.
type Origin string

const (
	OriginCache   Origin = "cache"
	OriginNetwork Origin = "network"
)

// Loader resolves the listing page from the cache first and the network second.
type Loader struct {
	Cache   PageCache
	Fetcher Fetcher
	Logger  *slog.Logger
}

// LoadOrFetch returns the cached page when present. Otherwise it fetches url,
// saves the result to the cache and returns it. In offline mode a cache miss
// is ErrNoCachedPage and no request is made.
func (l Loader) LoadOrFetch(ctx context.Context, url string, offline bool) (string, Origin, error) {
	logger := l.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	html, ok, err := l.Cache.Load()
	if err != nil {
		return "", "", err
	}
	if ok {
		logger.Info("using cached page", logging.String("path", l.Cache.Path), logging.Int("bytes", len(html)))
		return html, OriginCache, nil
	}
	if offline {
		return "", "", fmt.Errorf("%w at %s", ErrNoCachedPage, l.Cache.Path)
	}
	if l.Fetcher == nil {
		return "", "", errors.New("no fetcher configured")
	}

	logger.Info("downloading page", logging.String("url", url))
	html, err = l.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", "", err
	}
	if err := l.Cache.Save(html); err != nil {
		logging.WarnWithContext(logger, "page cache write failed", "page_cache_write_failed",
			logging.String("path", l.Cache.Path),
			logging.Error(err),
			logging.String(logging.FieldImpact, "next run downloads the page again"),
		)
	}
	return html, OriginNetwork, nil
}
