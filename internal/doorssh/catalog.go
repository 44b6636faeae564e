package doorssh

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/stlalpha/nfoview/internal/nfo/internal/nlog"
)

var servedExtensions = map[string]bool{
	".nfo": true, ".diz": true, ".asc": true, ".ans": true, ".txt": true,
}

// Catalog tracks the set of servable files in a directory, refreshed
// either by fsnotify events or a periodic rescan (the fsnotify-miss
// safety net for NFS mounts and similar).
type Catalog struct {
	dir string

	mu    sync.RWMutex
	files []string

	watcher *fsnotify.Watcher
}

// NewCatalog scans dir once and starts an fsnotify watch on it.
func NewCatalog(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir}
	if err := c.Rescan(); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	c.watcher = w

	go c.watchLoop()
	return c, nil
}

func (c *Catalog) watchLoop() {
	for {
		select {
		case ev, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				nlog.Debug("catalog: fsnotify event %v, rescanning", ev)
				if err := c.Rescan(); err != nil {
					nlog.Debug("catalog: rescan after fsnotify event failed: %v", err)
				}
			}
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			nlog.Debug("catalog: fsnotify error: %v", err)
		}
	}
}

// Rescan re-lists c.dir for servable files.
func (c *Catalog) Rescan() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if servedExtensions[ext] {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	c.mu.Lock()
	c.files = files
	c.mu.Unlock()
	return nil
}

// Files returns the current servable file list.
func (c *Catalog) Files() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.files...)
}

// Close stops the fsnotify watch.
func (c *Catalog) Close() error {
	if c.watcher != nil {
		return c.watcher.Close()
	}
	return nil
}
