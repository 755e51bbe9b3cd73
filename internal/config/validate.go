// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/anybar"
	"github.com/tamzrod/anybar/internal/status"
)

// MaxBaseSlot is the last device block that fits in the 16-bit register space.
const MaxBaseSlot = 65536/status.SlotsPerDevice - 1

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}

	var errs []string
	a := cfg.Anybar

	// ------------------------------------------------------------
	// PORT (full UDP range)
	// ------------------------------------------------------------

	if a.Port != nil && (*a.Port < 0 || *a.Port > 65535) {
		errs = append(errs, fmt.Sprintf("port %d is not between 0 and 65535", *a.Port))
	}

	// ------------------------------------------------------------
	// SEQUENCE
	// ------------------------------------------------------------

	if s := a.Sequence; s != nil {
		if s.Loops < 0 {
			errs = append(errs, fmt.Sprintf("sequence: loops must be >= 0, got %d", s.Loops))
		}
		if len(s.Steps) == 0 {
			errs = append(errs, "sequence: at least one step required")
		}
		if s.Loops == 0 && len(s.Steps) > 0 && totalHoldMs(s.Steps) == 0 {
			errs = append(errs, "sequence: loops 0 repeats forever and needs at least one hold_ms > 0")
		}
		for i, st := range s.Steps {
			if _, err := anybar.ParseColor(st.Color); err != nil {
				errs = append(errs, fmt.Sprintf("sequence: step[%d]: unknown color %q", i, st.Color))
			}
			if st.HoldMs < 0 {
				errs = append(errs, fmt.Sprintf("sequence: step[%d]: hold_ms must be >= 0, got %d", i, st.HoldMs))
			}
		}
	}

	// ------------------------------------------------------------
	// WATCH
	// ------------------------------------------------------------

	if w := a.Watch; w != nil {
		if w.Endpoint == "" {
			errs = append(errs, "watch: endpoint required")
		}
		if w.IntervalMs <= 0 {
			errs = append(errs, fmt.Sprintf("watch: interval_ms must be > 0, got %d", w.IntervalMs))
		}
		if w.BaseSlot > MaxBaseSlot {
			errs = append(errs, fmt.Sprintf("watch: base_slot must be <= %d, got %d", MaxBaseSlot, w.BaseSlot))
		}
		if w.TimeoutMs < 0 {
			errs = append(errs, fmt.Sprintf("watch: timeout_ms must be >= 0, got %d", w.TimeoutMs))
		}
		for k, v := range w.Palette {
			if !status.IsPaletteKey(strings.ToLower(strings.TrimSpace(k))) {
				errs = append(errs, fmt.Sprintf("watch: palette: unknown health %q", k))
				continue
			}
			if _, err := anybar.ParseColor(v); err != nil {
				errs = append(errs, fmt.Sprintf("watch: palette: %s: unknown color %q", k, v))
			}
		}
	}

	if len(errs) > 0 {
		return errors.New("config: " + strings.Join(errs, " | "))
	}
	return nil
}

func totalHoldMs(steps []StepConfig) int {
	total := 0
	for _, st := range steps {
		if st.HoldMs > 0 {
			total += st.HoldMs
		}
	}
	return total
}
