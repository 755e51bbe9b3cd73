// internal/config/follow.go
package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FollowDebounce is how long the file must stay quiet before a reload fires.
const FollowDebounce = 100 * time.Millisecond

// Follow watches the config file at path and sends on the returned channel
// every time it changes. The parent directory is watched so that atomic
// writes (write tmp, rename over target) are seen. The channel is closed when
// ctx is done.
func Follow(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: follow %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: follow: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: follow %s: %w", path, err)
	}

	out := make(chan struct{}, 1)

	var (
		mu      sync.Mutex
		timer   *time.Timer
		stopped bool
	)
	fire := func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		select {
		case out <- struct{}{}:
		default: // a reload is already pending
		}
	}

	go func() {
		defer close(out)
		defer fw.Close()
		defer func() {
			mu.Lock()
			stopped = true
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(FollowDebounce, fire)
				mu.Unlock()

			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Printf("config follow error (path=%s): %v", path, err)
			}
		}
	}()

	return out, nil
}
