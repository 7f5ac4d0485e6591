// Package cache persists the last-known asset collection on disk so the
// app renders instantly and stays usable offline. The cache is strictly
// best-effort: writes swallow errors, reads fall back to empty.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lubu-ai/soletrack/internal/model"
)

const (
	assetsFile = "insoles.json"
	syncedFile = "last_synced"
)

// Cache stores the asset collection and the last-sync timestamp under a
// data directory, one file per key.
type Cache struct {
	dir string
}

// New returns a Cache rooted at dir.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Save persists the full collection and the sync timestamp. Each key is a
// single atomic file write; failures are logged and swallowed so the cache
// can never surface a user-visible error.
func (c *Cache) Save(assets []model.Asset, syncedAt string) {
	if c == nil || c.dir == "" {
		return
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		logrus.WithError(err).Debug("cache: create dir")
		return
	}

	if assets == nil {
		assets = []model.Asset{}
	}
	data, err := json.Marshal(assets)
	if err != nil {
		logrus.WithError(err).Debug("cache: encode assets")
		return
	}
	if err := os.WriteFile(filepath.Join(c.dir, assetsFile), data, 0o644); err != nil {
		logrus.WithError(err).Debug("cache: write assets")
		return
	}
	if err := os.WriteFile(filepath.Join(c.dir, syncedFile), []byte(syncedAt), 0o644); err != nil {
		logrus.WithError(err).Debug("cache: write sync timestamp")
	}
}

// Load reads the cached collection and sync timestamp. Missing or
// malformed data yields an empty result, never an error.
func (c *Cache) Load() ([]model.Asset, string) {
	if c == nil || c.dir == "" {
		return nil, ""
	}

	data, err := os.ReadFile(filepath.Join(c.dir, assetsFile))
	if err != nil {
		return nil, ""
	}
	var assets []model.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		logrus.WithError(err).Debug("cache: decode assets")
		return nil, ""
	}

	syncedAt := ""
	if raw, err := os.ReadFile(filepath.Join(c.dir, syncedFile)); err == nil {
		syncedAt = strings.TrimSpace(string(raw))
	}
	return assets, syncedAt
}
