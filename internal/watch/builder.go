// internal/watch/builder.go
package watch

import (
	"fmt"
	"time"

	"github.com/tamzrod/anybar"
	cfg "github.com/tamzrod/anybar/internal/config"
	"github.com/tamzrod/anybar/internal/status"
	wmodbus "github.com/tamzrod/anybar/internal/watch/modbus"
)

// Palette applies the configured overrides to the default palette.
func Palette(w cfg.WatchConfig) (status.Palette, error) {
	over := make(map[string]anybar.Color, len(w.Palette))
	for k, v := range w.Palette {
		c, err := anybar.ParseColor(v)
		if err != nil {
			return status.Palette{}, fmt.Errorf("watch: palette %s: %w", k, err)
		}
		over[k] = c
	}
	return status.DefaultPalette().Override(over)
}

// Build constructs a Watcher and wires the Modbus client lifecycle.
// Assumes config has already passed validation and normalization.
func Build(w cfg.WatchConfig, ind Indicator) (*Watcher, func() error, error) {
	pal, err := Palette(w)
	if err != nil {
		return nil, nil, err
	}

	client, err := wmodbus.New(wmodbus.Config{
		Endpoint: w.Endpoint,
		UnitID:   w.UnitID,
		Timeout:  time.Duration(w.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	wt, err := New(
		Config{
			Interval: time.Duration(w.IntervalMs) * time.Millisecond,
			BaseSlot: w.BaseSlot,
			Palette:  pal,
		},
		client,
		ind,
	)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return wt, client.Close, nil
}
