// Package history persists opened destinations in an append-only log.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/pkg/filesystem"
	"github.com/doeshing/wf-go/internal/ports"
)

// FileStore appends one tab-separated "url<TAB>title" line per confirmed
// open. Records are never mutated or deleted; dedup happens at read time.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store at path, defaulting to ~/.wf/history.log.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".wf", "history.log")
	}
	return &FileStore{path: path}
}

// Record implements ports.HistoryStore.
func (f *FileStore) Record(entry domain.HistoryEntry) error {
	if entry.URL == "" {
		return nil
	}
	title := entry.Title
	if title == "" {
		title = entry.URL
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePermissions)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = fmt.Fprintf(file, "%s\t%s\n", entry.URL, sanitize(title))
	return err
}

// Search implements ports.HistoryStore. The log is scanned in reverse so
// the freshest title wins for a URL seen more than once; malformed lines
// are skipped silently.
func (f *FileStore) Search(filter string, limit int) ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	seen := make(map[string]bool)
	var entries []domain.HistoryEntry
	for i := len(lines) - 1; i >= 0; i-- {
		url, title, ok := strings.Cut(lines[i], "\t")
		if !ok || url == "" {
			continue
		}
		if seen[url] {
			continue
		}
		seen[url] = true
		entry := domain.HistoryEntry{URL: url, Title: title}
		if !entry.Matches(filter) {
			continue
		}
		entries = append(entries, entry)
		if limit > 0 && len(entries) >= limit {
			break
		}
	}
	return entries, nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string { return f.path }

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitize keeps a title on a single log line.
func sanitize(title string) string {
	title = strings.ReplaceAll(title, "\t", " ")
	return strings.ReplaceAll(title, "\n", " ")
}

var _ ports.HistoryStore = (*FileStore)(nil)
var _ ports.HistoryRepository = (*FileStore)(nil)
