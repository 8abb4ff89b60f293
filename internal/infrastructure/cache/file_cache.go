// Package cache stores external payloads as JSON files addressed by key.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/pkg/filesystem"
	"github.com/doeshing/wf-go/internal/ports"
)

// FileCache keeps one <key>.json file per entry under a single directory.
// Freshness is judged purely by file modification time against the caller's
// TTL; cached payloads are never revalidated against the external source.
type FileCache struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// New returns a cache rooted at dir, defaulting to ~/.wf/cache.
func New(dir string) *FileCache {
	if dir == "" {
		dir = filepath.Join(filesystem.UserHomeDir(), ".wf", "cache")
	}
	return &FileCache{dir: dir, now: time.Now}
}

// Fetch implements ports.CacheStore.
func (c *FileCache) Fetch(key string, ttl time.Duration, fill func() ([]byte, error)) ([]byte, bool, error) {
	if payload, ok := c.read(key, ttl); ok {
		return payload, true, nil
	}

	payload, err := fill()
	if err != nil {
		// Failures are never cached.
		return nil, false, err
	}
	if !json.Valid(payload) {
		return nil, false, &domain.InvocationError{
			Err: fmt.Errorf("cache %s: external output is not valid JSON", key),
		}
	}
	if err := c.write(key, payload); err != nil {
		return nil, false, fmt.Errorf("write cache entry %s: %w", key, err)
	}
	return payload, false, nil
}

func (c *FileCache) read(key string, ttl time.Duration) ([]byte, bool) {
	path := c.pathFor(key)
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if ttl > 0 && c.now().Sub(info.ModTime()) >= ttl {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil || !json.Valid(data) {
		// A torn or malformed entry counts as a miss, not corruption.
		return nil, false
	}
	return data, true
}

func (c *FileCache) write(key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(c.pathFor(key), payload, domain.FilePermissions)
}

// Dir exposes the cache directory path.
func (c *FileCache) Dir() string { return c.dir }

// Clear removes all cached entries.
func (c *FileCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// Entries lists cache entries (best-effort).
func (c *FileCache) Entries() ([]domain.CacheInfo, error) {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []domain.CacheInfo
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		entries = append(entries, domain.CacheInfo{
			Key:     strings.TrimSuffix(f.Name(), ".json"),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return entries, nil
}

func (c *FileCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".json")
}

var _ ports.CacheStore = (*FileCache)(nil)
var _ ports.CacheRepository = (*FileCache)(nil)
