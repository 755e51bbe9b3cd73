// internal/watch/runner.go
package watch

import (
	"context"
	"log"
	"time"
)

// Run polls on a ticker until ctx is done. The first poll happens
// immediately. One goroutine, no overlap.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	w.tick()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *Watcher) tick() {
	res := w.PollOnce()
	if res.Err != nil {
		log.Printf("status read failed (slot=%d): %v", w.cfg.BaseSlot, res.Err)
	}

	sent, err := w.Apply(res)
	if err != nil {
		// not recorded as pushed, so the next tick tries again
		log.Printf("indicator update failed (color=%s): %v", res.Color, err)
		return
	}
	if sent {
		log.Printf("indicator -> %s (device=%q health=%d last_error=%d)",
			res.Color, res.Snapshot.DeviceName, res.Snapshot.Health, res.Snapshot.LastErrorCode)
	}
}
