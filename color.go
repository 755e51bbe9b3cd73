package anybar

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one of the dots AnyBar knows how to draw.
type Color int

const (
	White Color = iota
	Red
	Orange
	Yellow
	Green
	Cyan
	Blue
	Purple
	// Black has a white frame in dark mode.
	Black
	// Question is a question mark.
	Question
	// Exclamation is a white exclamation mark on red ground.
	Exclamation
)

// Wire tokens, indexed by Color. Locked by the AnyBar protocol.
var tokens = [...]string{
	White:       "white",
	Red:         "red",
	Orange:      "orange",
	Yellow:      "yellow",
	Green:       "green",
	Cyan:        "cyan",
	Blue:        "blue",
	Purple:      "purple",
	Black:       "black",
	Question:    "question",
	Exclamation: "exclamation",
}

// Colors returns every Color in declaration order.
func Colors() []Color {
	out := make([]Color, len(tokens))
	for i := range tokens {
		out[i] = Color(i)
	}
	return out
}

// Valid reports whether c is one of the declared colors.
func (c Color) Valid() bool {
	return c >= 0 && int(c) < len(tokens)
}

// Token returns the exact bytes AnyBar expects for c, or nil if c is not valid.
func (c Color) Token() []byte {
	if !c.Valid() {
		return nil
	}
	return []byte(tokens[c])
}

func (c Color) String() string {
	if !c.Valid() {
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
	return tokens[c]
}

// ParseColor is the inverse of Token. Matching ignores case and surrounding
// whitespace.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, tok := range tokens {
		if tok == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// UnmarshalText lets colors be decoded by name from YAML, JSON and flags.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText encodes c as its token.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, int(c))
	}
	return c.Token(), nil
}
