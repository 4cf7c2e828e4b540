// Package theme provides color themes and styling for the hypergrid
// demo host.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup. An empty name disables
// theming and the fallback palette is used.
func Initialize(themeName string) {
	if themeName == "" {
		enabled = false
		return
	}

	enabled = true
	tint.NewDefaultRegistry()
	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool { return enabled }

// Current returns the currently active theme, or nil when theming is
// disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// BorderFocused is the border color of the focused window.
func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// BorderUnfocused is the border color of unfocused windows.
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

// BorderDeparting is the border color of a window fading out.
func BorderDeparting() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

// StatusFg is the status bar foreground.
func StatusFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// StatusAccent highlights the active workspace and mode indicators.
func StatusAccent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}
