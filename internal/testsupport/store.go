package testsupport

import (
	"testing"

	"topchart/internal/catalog"
	"topchart/internal/config"
)

// MustOpenStore opens the catalog configured in cfg and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg.Paths.Database)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
