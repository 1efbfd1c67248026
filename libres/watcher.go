package libres

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/slices"
)

// Watcher collects the names of shader files that changed on disk. Events
// arrive on a background goroutine; the render thread drains them with
// Changed.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan bool
	wg      sync.WaitGroup

	mu      sync.Mutex
	pending map[string]bool
}

// WatchShaders starts watching the shader directory. It fails if the
// directory does not exist.
func (r *Resources) WatchShaders() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher: %w", err)
	}
	dir := filepath.Join(r.dir, ShaderDir)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("could not watch %s: %w", dir, err)
	}

	w := &Watcher{
		watcher: fw,
		done:    make(chan bool),
		pending: map[string]bool{},
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending[filepath.Base(event.Name)] = true
				w.mu.Unlock()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("shader watcher error", "error", err)
		}
	}
}

// Changed returns and forgets the names of files changed since the last
// call, sorted.
func (w *Watcher) Changed() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	names := make([]string, 0, len(w.pending))
	for name := range w.pending {
		names = append(names, name)
	}
	w.pending = map[string]bool{}
	slices.Sort(names)
	return names
}

func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
