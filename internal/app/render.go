package app

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/hypergrid/hypergrid/internal/config"
	"github.com/hypergrid/hypergrid/internal/engine"
	"github.com/hypergrid/hypergrid/internal/geo"
	"github.com/hypergrid/hypergrid/internal/theme"
)

// View renders the desktop.
func (d *Desktop) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(d.canvas().Render()))
	view.AltScreen = true
	return view
}

func (d *Desktop) canvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(d.Width, d.Height)

	var layers []*lipgloss.Layer
	focused := d.FocusedWindow()

	for i, frame := range d.driver.Frames() {
		rect := popRect(frame)
		if rect.Empty() {
			continue
		}

		z := i
		if frame.View == focused && !frame.Departing {
			z = 1000 // focused window above everything
		}

		layers = append(layers, lipgloss.NewLayer(d.renderWindow(frame, rect)).
			X(rect.X).Y(rect.Y).Z(z).ID(frame.View))
	}

	layers = append(layers, lipgloss.NewLayer(d.renderStatusBar()).
		X(0).Y(max(d.Height-1, 0)).Z(2000))

	if d.ShowHelp {
		layers = append(layers, d.renderHelp())
	}

	canvas.Compose(lipgloss.NewCompositor(layers...))
	return canvas
}

// popRect shrinks the frame's current rectangle around its center by
// the pop scale, so pop-in grows the box out of the tile's middle and
// pop-out collapses it back in.
func popRect(frame engine.WindowFrame) geo.Rect {
	r := frame.Current
	if frame.Scale >= 1 {
		return r
	}
	w := int(float64(r.Width) * frame.Scale)
	h := int(float64(r.Height) * frame.Scale)
	return geo.Rect{
		X:      r.X + (r.Width-w)/2,
		Y:      r.Y + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

func (d *Desktop) renderWindow(frame engine.WindowFrame, rect geo.Rect) string {
	title := d.titles[frame.View]
	if title == "" {
		title = frame.View
		if len(title) > 8 {
			title = title[:8]
		}
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.windowBorderColor(frame)).
		Width(max(rect.Width-2, 0)).
		Height(max(rect.Height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(title)
}

// windowBorderColor maps the frame's state to a border color. A
// terminal cannot alpha-blend, so opacity below half renders with the
// dimmest color available.
func (d *Desktop) windowBorderColor(frame engine.WindowFrame) color.Color {
	switch {
	case frame.Departing:
		return theme.BorderDeparting()
	case frame.Alpha < 0.5:
		return theme.BorderUnfocused()
	case frame.View == d.FocusedWindow():
		return theme.BorderFocused()
	default:
		return theme.BorderUnfocused()
	}
}

func (d *Desktop) renderStatusBar() string {
	accent := lipgloss.NewStyle().Foreground(theme.StatusAccent()).Bold(true)
	plain := lipgloss.NewStyle().Foreground(theme.StatusFg())

	var b strings.Builder
	for ws := 1; ws <= config.WorkspaceCount; ws++ {
		label := fmt.Sprintf(" %d ", ws)
		if ws == d.workspace {
			b.WriteString(accent.Render(label))
		} else {
			b.WriteString(plain.Render(label))
		}
	}

	left := b.String()
	count := len(d.driver.Tree(d.workspace).Views())
	mid := plain.Render(fmt.Sprintf(" %d windows ", count))

	anim := " "
	if d.driver.Armed() {
		anim = accent.Render("~")
	}

	right := plain.Render(d.sysinfoLine())

	gap := d.Width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return left + mid + anim + strings.Repeat(" ", gap) + right
}

func (d *Desktop) renderHelp() *lipgloss.Layer {
	bindings := []struct{ key, desc string }{
		{"n", "Open window"},
		{"x", "Close focused window"},
		{"tab / shift+tab", "Cycle focus"},
		{"1-9", "Switch workspace"},
		{"t", "Toggle split direction"},
		{"s", "Swap with sibling"},
		{"p", "Toggle pseudotile"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	for _, kb := range bindings {
		fmt.Fprintf(&b, "%-18s %s\n", kb.key, kb.desc)
	}

	content := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.StatusAccent()).
		Padding(0, 2).
		Render(strings.TrimRight(b.String(), "\n"))

	x := max((d.Width-lipgloss.Width(content))/2, 0)
	y := max((d.Height-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y).Z(3000)
}
