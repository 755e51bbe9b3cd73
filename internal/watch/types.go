// internal/watch/types.go
package watch

import (
	"time"

	"github.com/tamzrod/anybar"
	"github.com/tamzrod/anybar/internal/status"
)

// Result is a snapshot produced by one poll cycle.
type Result struct {
	At       time.Time
	Snapshot status.Snapshot
	Color    anybar.Color
	Err      error // non-nil means the read failed; Color is the stale color
}
