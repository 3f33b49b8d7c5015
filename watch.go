package shade

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a theme file into a provider whenever the file changes on
// disk, enabling live theme editing during development.
//
// The containing directory is watched rather than the file itself, because
// most editors save atomically (write to a temp file, then rename over the
// target), which would otherwise drop the watch.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	provider *Provider

	mu      sync.Mutex
	onError func(error)

	done      chan struct{}
	closeOnce sync.Once
}

// WatchConfigFile loads the theme file into the provider once, then keeps it
// in sync with the file until Close is called. If the file sets no mode, the
// provider's current mode is preserved across reloads so a live edit does
// not undo a mode the user picked at runtime.
func WatchConfigFile(path string, p *Provider) (*Watcher, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve theme file path: %w", err)
	}

	if err := apply(path, p, false); err != nil {
		return nil, err
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		fs:       fs,
		path:     path,
		provider: p,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// OnError registers a callback for reload failures (unreadable or invalid
// theme file). Without one, failures are dropped and the provider keeps its
// previous state.
func (w *Watcher) OnError(fn func(error)) {
	w.mu.Lock()
	w.onError = fn
	w.mu.Unlock()
}

// Close stops watching. The provider keeps whatever state it last had.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := apply(w.path, w.provider, true); err != nil {
				w.reportError(err)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.reportError(fmt.Errorf("theme file watcher: %w", err))
		}
	}
}

func (w *Watcher) reportError(err error) {
	w.mu.Lock()
	fn := w.onError
	w.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

// apply loads the file and replaces the provider's state.
// On reload, a file without an explicit mode keeps the provider's mode.
func apply(path string, p *Provider, keepMode bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme file: %w", err)
	}

	file, err := decodeThemeFile(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	config, err := file.config()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	mode := config.Mode
	if keepMode && file.Mode == "" {
		mode = p.Mode()
	}

	state := State{Light: config.Light, Mode: mode}
	if config.Dark != nil {
		state = state.WithDark(*config.Dark)
	}
	p.SetState(state)
	return nil
}
