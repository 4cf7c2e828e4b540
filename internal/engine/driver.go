// Package engine orchestrates the per-workspace layout trees: it
// routes window events to the right tree, ticks every animation once
// per frame, and exposes per-window render state for the host to
// apply. The frame loop is edge-triggered: structural changes arm the
// driver, and a tick on which nothing animates disarms it.
package engine

import (
	"github.com/hypergrid/hypergrid/internal/geo"
	"github.com/hypergrid/hypergrid/internal/tile"
)

// WindowFrame is one window's render state for the current frame.
type WindowFrame struct {
	View    string
	Current geo.Rect
	Goal    geo.Rect
	Scale   float64
	Alpha   float64
	// Departing marks a window whose pop-out is draining after
	// removal; it has a current rect but no meaningful goal.
	Departing bool
}

// Driver owns one layout tree per workspace, created lazily on first
// use. All methods must be called from the host's single update
// goroutine.
type Driver struct {
	opts   tile.Options
	bounds geo.Rect

	trees  map[int]*tile.Tree
	active int
	armed  bool
}

// NewDriver returns a driver over the given workspace bounds.
func NewDriver(bounds geo.Rect, opts tile.Options) *Driver {
	return &Driver{
		opts:   opts,
		bounds: bounds,
		trees:  make(map[int]*tile.Tree),
	}
}

// Tree returns the workspace's tree, creating it on first use.
func (d *Driver) Tree(workspace int) *tile.Tree {
	t, ok := d.trees[workspace]
	if !ok {
		t = tile.NewTree(d.bounds, d.opts)
		d.trees[workspace] = t
	}
	return t
}

// SetActiveWorkspace selects the workspace whose windows Frames
// reports. Goal geometry on the newly visible workspace is applied
// exactly, with no animation, so a switch never shows stale mid-flight
// rectangles.
func (d *Driver) SetActiveWorkspace(workspace int) {
	if workspace == d.active {
		return
	}
	d.active = workspace
	d.FinalizeWorkspace(workspace)
}

// ActiveWorkspace returns the currently visible workspace.
func (d *Driver) ActiveWorkspace() int { return d.active }

// FinalizeWorkspace snaps every window on the workspace to its goal
// rectangle.
func (d *Driver) FinalizeWorkspace(workspace int) {
	t, ok := d.trees[workspace]
	if !ok {
		return
	}
	t.RecalculateLayout(false)
}

// SetBounds propagates a new workspace rectangle to every tree and
// recalculates their layouts.
func (d *Driver) SetBounds(bounds geo.Rect) {
	d.bounds = bounds
	for _, t := range d.trees {
		t.SetBounds(bounds)
		t.RecalculateLayout(true)
	}
	d.armed = true
}

// SetOptions propagates new configuration to every tree and reflows.
// Used for live config reload.
func (d *Driver) SetOptions(opts tile.Options) {
	d.opts = opts
	for _, t := range d.trees {
		t.SetOptions(opts)
		t.RecalculateLayout(true)
	}
	d.armed = true
}

// AddWindow inserts a window into the workspace's tree and marks it
// focused there.
func (d *Driver) AddWindow(workspace int, view string) {
	t := d.Tree(workspace)
	t.SetFocused(view)
	t.AddView(view, true)
	d.armed = true
}

// RemoveWindow removes a window from whichever tree holds it. Unknown
// windows are a no-op.
func (d *Driver) RemoveWindow(view string) {
	for _, t := range d.trees {
		if t.HasView(view) {
			t.RemoveView(view, true)
			d.armed = true
			return
		}
	}
}

// SetFocused records the focused window on the active workspace.
func (d *Driver) SetFocused(view string) {
	d.Tree(d.active).SetFocused(view)
}

// SetCursor records the cursor position on the active workspace.
func (d *Driver) SetCursor(p geo.Point) {
	d.Tree(d.active).SetCursor(p)
}

// Command runs a layout command ("togglesplit", "swapnext",
// "swapprev", "pseudo") against the active workspace.
func (d *Driver) Command(msg, target string) {
	d.Tree(d.active).HandleLayoutMessage(msg, target)
	d.armed = true
}

// Armed reports whether the host should keep driving per-frame ticks.
func (d *Driver) Armed() bool { return d.armed }

// Tick advances every tree's animations by one frame and reports
// whether anything is still moving. The first tick that reports
// nothing moving disarms the driver; by then every scalar has snapped
// to its goal, so the following Frames read carries exact values.
func (d *Driver) Tick() bool {
	animating := false
	for _, t := range d.trees {
		if t.TickAnimations() {
			animating = true
		}
	}
	if !animating {
		d.armed = false
	}
	return animating
}

// Frames returns the render state of every window on the active
// workspace, including draining pop-outs. Windows whose goal rectangle
// is degenerate are skipped so a consumer deriving scale factors from
// current/goal ratios never divides by zero.
func (d *Driver) Frames() []WindowFrame {
	t, ok := d.trees[d.active]
	if !ok {
		return nil
	}

	views := t.Views()
	frames := make([]WindowFrame, 0, len(views))
	for _, view := range views {
		goal, ok := t.ViewGoalGeometry(view)
		if !ok || goal.Empty() {
			continue
		}
		current, _ := t.ViewGeometry(view)
		scale, alpha := t.ViewScaleAlpha(view)
		frames = append(frames, WindowFrame{
			View:    view,
			Current: current,
			Goal:    goal,
			Scale:   scale,
			Alpha:   alpha,
		})
	}

	for _, dep := range t.Departing() {
		if dep.Rect.Empty() {
			continue
		}
		frames = append(frames, WindowFrame{
			View:      dep.View,
			Current:   dep.Rect,
			Goal:      dep.Rect,
			Scale:     dep.Scale,
			Alpha:     dep.Alpha,
			Departing: true,
		})
	}

	return frames
}
