package beacon

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// FileLoader reads the payload from a file on every load.
type FileLoader struct {
	path string
}

// NewFileLoader creates a FileLoader for the given path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// LoadContent reads the file.
func (l *FileLoader) LoadContent(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.path, err)
	}
	return data, nil
}

// Ensure FileLoader implements Loader.
var _ Loader = (*FileLoader)(nil)

// NewFileTrigger watches a file and returns a channel that receives a
// value whenever the file is written or created. Hosts that load from a
// file can select on this channel and call Repository.Refresh to pick up
// changes immediately instead of, or in addition to, the scheduled
// interval.
//
// The channel is closed when the context is canceled or the underlying
// watcher fails.
func NewFileTrigger(ctx context.Context, path string) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", path, err)
	}

	out := make(chan struct{})

	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				// Only trigger on write or create events
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				select {
				case out <- struct{}{}:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Continue watching despite errors
			}
		}
	}()

	return out, nil
}
