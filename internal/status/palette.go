// internal/status/palette.go
package status

import (
	"fmt"

	"github.com/tamzrod/anybar"
)

// Palette decides which dot represents each health code.
type Palette struct {
	Unknown  anybar.Color
	OK       anybar.Color
	Error    anybar.Color
	Stale    anybar.Color
	Disabled anybar.Color

	// Other is used for health codes this package does not know.
	Other anybar.Color
}

// DefaultPalette returns the palette used when no overrides are configured.
func DefaultPalette() Palette {
	return Palette{
		Unknown:  anybar.Question,
		OK:       anybar.Green,
		Error:    anybar.Red,
		Stale:    anybar.Orange,
		Disabled: anybar.Black,
		Other:    anybar.Exclamation,
	}
}

// ColorFor maps a health code to its color.
func (p Palette) ColorFor(health uint16) anybar.Color {
	switch health {
	case HealthUnknown:
		return p.Unknown
	case HealthOK:
		return p.OK
	case HealthError:
		return p.Error
	case HealthStale:
		return p.Stale
	case HealthDisabled:
		return p.Disabled
	default:
		return p.Other
	}
}

// Override returns a copy of p with the named entries replaced.
// Keys are unknown, ok, error, stale, disabled and other.
func (p Palette) Override(m map[string]anybar.Color) (Palette, error) {
	for k, c := range m {
		if !c.Valid() {
			return p, fmt.Errorf("status: palette %q: %w", k, anybar.ErrUnknownColor)
		}
		switch k {
		case "unknown":
			p.Unknown = c
		case "ok":
			p.OK = c
		case "error":
			p.Error = c
		case "stale":
			p.Stale = c
		case "disabled":
			p.Disabled = c
		case "other":
			p.Other = c
		default:
			return p, fmt.Errorf("status: unknown palette key %q", k)
		}
	}
	return p, nil
}

// IsPaletteKey reports whether k names a Palette entry.
func IsPaletteKey(k string) bool {
	switch k {
	case "unknown", "ok", "error", "stale", "disabled", "other":
		return true
	}
	return false
}
