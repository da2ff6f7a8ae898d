package graphics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher reports programs whose source files change on disk.
// Names are delivered on Changes; the render thread drains it and reloads.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	changes chan string
}

// NewShaderWatcher watches dir for shader source writes.
func NewShaderWatcher(dir string) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("shader watcher: watch %s: %w", dir, err)
	}
	return &ShaderWatcher{watcher: w, changes: make(chan string, 16)}, nil
}

// Changes carries program names, e.g. "liquids".
func (sw *ShaderWatcher) Changes() <-chan string { return sw.changes }

// Run forwards events until ctx is done, then closes the watcher.
func (sw *ShaderWatcher) Run(ctx context.Context) error {
	defer sw.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name, ok := ProgramName(event.Name)
			if !ok {
				continue
			}
			select {
			case sw.changes <- name:
			default:
				// queue full
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("shader watcher", "err", err)
		}
	}
}

// Drain returns the distinct program names queued since the last call without blocking.
func (sw *ShaderWatcher) Drain() []string {
	var out []string
	seen := make(map[string]bool)
	for {
		select {
		case name := <-sw.changes:
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		default:
			return out
		}
	}
}
