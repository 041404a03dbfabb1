// Package preview serves pre-rendered voice preview clips from a local
// cache directory. Clips are generated offline and shipped with the app;
// nothing here synthesizes audio.
package preview

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

const (
	filePrefix = "voice_"
	fileExt    = ".mp3"
)

// Cache resolves and reads preview clips under
// <resource-root>/preview_cache/voice_<voice_name>.mp3. That layout is the
// join key between catalog entries and cached audio and must not change.
type Cache struct {
	dir string

	mu        sync.RWMutex
	available map[string]bool
}

// NewCache creates a cache rooted at the given preview directory.
func NewCache(dir string) *Cache {
	return &Cache{
		dir:       dir,
		available: make(map[string]bool),
	}
}

// Dir returns the preview cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// FileName returns the expected clip file name for a voice.
func FileName(voiceName string) string {
	return filePrefix + voiceName + fileExt
}

// PathFor constructs the deterministic clip path for a voice name. Voice
// names are expected to originate from the catalog; names carrying path
// separators or parent references are rejected rather than resolved, so a
// hostile name can never escape the cache directory.
func (c *Cache) PathFor(voiceName string) (string, error) {
	if voiceName == "" {
		return "", fmt.Errorf("empty voice name")
	}
	if strings.ContainsAny(voiceName, `/\`) || strings.Contains(voiceName, "..") {
		return "", fmt.Errorf("unsafe voice name %q", voiceName)
	}
	return filepath.Join(c.dir, FileName(voiceName)), nil
}

// Read returns the clip bytes for a voice. A missing clip fails with an
// error that wraps os.ErrNotExist and names the expected file; reading an
// existing clip that cannot be opened surfaces the I/O error as-is.
func (c *Cache) Read(voiceName string) ([]byte, error) {
	path, err := c.PathFor(voiceName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("voice preview file not found: %s: %w", FileName(voiceName), os.ErrNotExist)
		}
		return nil, fmt.Errorf("read voice preview %s: %w", FileName(voiceName), err)
	}
	return data, nil
}

// Scan walks the cache directory once and rebuilds the availability index.
// A missing directory is not an error; it just means no previews shipped.
func (c *Cache) Scan() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			c.mu.Lock()
			c.available = make(map[string]bool)
			c.mu.Unlock()
			return nil
		}
		return fmt.Errorf("read preview dir %q: %w", c.dir, err)
	}

	available := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := voiceNameFromFile(entry.Name()); ok {
			available[name] = true
		}
	}

	c.mu.Lock()
	c.available = available
	c.mu.Unlock()
	return nil
}

// Has reports whether a preview clip is currently indexed for the voice.
func (c *Cache) Has(voiceName string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.available[voiceName]
}

// Cached returns the sorted voice names that have an indexed preview clip.
func (c *Cache) Cached() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.available))
	for name := range c.available {
		names = append(names, name)
	}
	c.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Watch keeps the availability index in sync with the cache directory.
// This blocks until the done channel is closed.
func (c *Cache) Watch(done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(c.dir); err != nil {
		return fmt.Errorf("watch preview dir %q: %w", c.dir, err)
	}

	for {
		select {
		case <-done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, isClip := voiceNameFromFile(filepath.Base(event.Name))
			if !isClip {
				continue
			}
			switch {
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				c.mu.Lock()
				c.available[name] = true
				c.mu.Unlock()
				slog.Debug("preview clip indexed", slog.String("voice", name))
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				c.mu.Lock()
				delete(c.available, name)
				c.mu.Unlock()
				slog.Debug("preview clip dropped", slog.String("voice", name))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// voiceNameFromFile extracts the voice name from a clip file name, or
// reports false for files that do not follow the voice_<name>.mp3 scheme.
func voiceNameFromFile(fileName string) (string, bool) {
	if !strings.HasPrefix(fileName, filePrefix) || !strings.HasSuffix(fileName, fileExt) {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(fileName, filePrefix), fileExt)
	if name == "" {
		return "", false
	}
	return name, true
}
