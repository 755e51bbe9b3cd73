// internal/config/normalize.go
package config

import (
	"strings"

	"github.com/tamzrod/anybar"
)

// DefaultWatchTimeoutMs applies when watch.timeout_ms is missing or zero.
const DefaultWatchTimeoutMs = 1000

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	a := &cfg.Anybar

	if a.Port == nil {
		p := anybar.DefaultPort
		a.Port = &p
	}

	if a.Sequence != nil {
		for i := range a.Sequence.Steps {
			st := &a.Sequence.Steps[i]
			st.Color = strings.ToLower(strings.TrimSpace(st.Color))
		}
	}

	if w := a.Watch; w != nil {
		if w.TimeoutMs == 0 {
			w.TimeoutMs = DefaultWatchTimeoutMs
		}
		if len(w.Palette) > 0 {
			pal := make(map[string]string, len(w.Palette))
			for k, v := range w.Palette {
				pal[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
			}
			w.Palette = pal
		}
	}
}
