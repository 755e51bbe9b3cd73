package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/anybar"
)

// Adaptive colors for CLI text.
var (
	colorWhite = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed   = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
)

// Dot colors, roughly what AnyBar draws.
var dotColors = map[anybar.Color]lipgloss.Color{
	anybar.White:       "#ffffff",
	anybar.Red:         "#ff3b30",
	anybar.Orange:      "#ff9500",
	anybar.Yellow:      "#ffcc00",
	anybar.Green:       "#4cd964",
	anybar.Cyan:        "#5ac8fa",
	anybar.Blue:        "#007aff",
	anybar.Purple:      "#af52de",
	anybar.Black:       "#000000",
	anybar.Question:    "#8e8e93",
	anybar.Exclamation: "#ff3b30",
}

// dot renders the indicator glyph for c.
func dot(c anybar.Color) string {
	glyph := "●"
	switch c {
	case anybar.Question:
		glyph = "?"
	case anybar.Exclamation:
		glyph = "!"
	}
	return lipgloss.NewStyle().Bold(true).Foreground(dotColors[c]).Render(glyph)
}
