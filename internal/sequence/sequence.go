// internal/sequence/sequence.go
package sequence

import (
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/anybar"
	cfg "github.com/tamzrod/anybar/internal/config"
)

// Indicator is the part of *anybar.Anybar the player drives.
type Indicator interface {
	SetColor(c anybar.Color) error
	Quit() error
}

// Step shows one color for Hold.
type Step struct {
	Color anybar.Color
	Hold  time.Duration
}

// Config is the immutable plan a Player runs.
type Config struct {
	Steps     []Step
	Loops     int // 0 = until cancelled
	QuitAtEnd bool
}

// Player runs a Config against one indicator.
type Player struct {
	cfg Config
	ind Indicator
}

// New creates a player with immutable config.
func New(c Config, ind Indicator) (*Player, error) {
	if ind == nil {
		return nil, errors.New("sequence: indicator required")
	}
	if len(c.Steps) == 0 {
		return nil, errors.New("sequence: at least one step required")
	}
	if c.Loops < 0 {
		return nil, fmt.Errorf("sequence: loops must be >= 0, got %d", c.Loops)
	}
	var total time.Duration
	for i, st := range c.Steps {
		total += st.Hold
		if !st.Color.Valid() {
			return nil, fmt.Errorf("sequence: step[%d]: %w", i, anybar.ErrUnknownColor)
		}
		if st.Hold < 0 {
			return nil, fmt.Errorf("sequence: step[%d]: negative hold", i)
		}
	}

	if c.Loops == 0 && total == 0 {
		return nil, errors.New("sequence: endless sequence needs a non-zero hold")
	}

	steps := make([]Step, len(c.Steps))
	copy(steps, c.Steps)
	c.Steps = steps

	return &Player{cfg: c, ind: ind}, nil
}

// FromConfig converts the YAML sequence section. It assumes the config was
// validated.
func FromConfig(sc cfg.SequenceConfig) (Config, error) {
	out := Config{
		Loops:     sc.Loops,
		QuitAtEnd: sc.QuitAtEnd,
		Steps:     make([]Step, 0, len(sc.Steps)),
	}
	for i, st := range sc.Steps {
		c, err := anybar.ParseColor(st.Color)
		if err != nil {
			return Config{}, fmt.Errorf("sequence: step[%d]: %w", i, err)
		}
		out.Steps = append(out.Steps, Step{
			Color: c,
			Hold:  time.Duration(st.HoldMs) * time.Millisecond,
		})
	}
	return out, nil
}

// TrafficLight is red, orange, green for 700ms each, then quit.
func TrafficLight() Config {
	const hold = 700 * time.Millisecond
	return Config{
		Steps: []Step{
			{Color: anybar.Red, Hold: hold},
			{Color: anybar.Orange, Hold: hold},
			{Color: anybar.Green, Hold: hold},
		},
		Loops:     1,
		QuitAtEnd: true,
	}
}
