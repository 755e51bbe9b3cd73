// internal/watch/watcher.go
package watch

import (
	"errors"
	"time"

	"github.com/tamzrod/anybar"
	"github.com/tamzrod/anybar/internal/status"
)

// Client abstracts the one Modbus operation the watcher needs.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
}

// Indicator is what the watcher pushes colors to.
type Indicator interface {
	SetColor(c anybar.Color) error
}

// Config is the minimal runtime config the watcher needs.
type Config struct {
	Interval time.Duration
	BaseSlot uint16
	Palette  status.Palette
}

// Watcher mirrors one device status block onto an indicator.
type Watcher struct {
	cfg    Config
	client Client
	ind    Indicator

	pushed    anybar.Color
	hasPushed bool
}

// New creates a watcher with immutable config.
func New(cfg Config, client Client, ind Indicator) (*Watcher, error) {
	if client == nil {
		return nil, errors.New("watch: client required")
	}
	if ind == nil {
		return nil, errors.New("watch: indicator required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("watch: interval must be > 0")
	}
	if uint32(cfg.BaseSlot)*status.SlotsPerDevice+status.SlotsPerDevice > 65536 {
		return nil, errors.New("watch: base slot out of register range")
	}
	return &Watcher{cfg: cfg, client: client, ind: ind}, nil
}

// PollOnce reads the status block exactly once.
// A failed read yields the stale color.
func (w *Watcher) PollOnce() Result {
	res := Result{At: time.Now()}

	addr := w.cfg.BaseSlot * status.SlotsPerDevice
	regs, err := w.client.ReadHoldingRegisters(addr, status.SlotsPerDevice)
	if err == nil {
		res.Snapshot, err = status.Decode(regs)
	}
	if err != nil {
		res.Err = err
		res.Snapshot = status.Snapshot{Health: status.HealthStale}
	}

	res.Color = w.cfg.Palette.ColorFor(res.Snapshot.Health)
	return res
}

// Apply pushes res.Color to the indicator if it differs from the last color
// pushed successfully. It reports whether a datagram was sent.
func (w *Watcher) Apply(res Result) (bool, error) {
	if w.hasPushed && w.pushed == res.Color {
		return false, nil
	}
	if err := w.ind.SetColor(res.Color); err != nil {
		return false, err
	}
	w.pushed = res.Color
	w.hasPushed = true
	return true, nil
}
