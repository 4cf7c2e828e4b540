// Package app implements the demo host: a bubbletea program that
// plays the role of the external compositor. It creates and destroys
// synthetic windows, feeds the layout engine focus and bounds events,
// drives the per-frame animation tick, and renders each window at its
// current animated rectangle.
package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hypergrid/hypergrid/internal/config"
	"github.com/hypergrid/hypergrid/internal/engine"
	"github.com/hypergrid/hypergrid/internal/geo"
)

// Desktop is the bubbletea model. One instance per session.
type Desktop struct {
	Width  int
	Height int

	cfg    *config.Config
	driver *engine.Driver

	workspace int
	titles    map[string]string
	focused   map[int]string
	counter   int

	ShowHelp bool

	cpuHistory  []float64
	ramPercent  float64
	lastSysinfo time.Time
}

// Options configures a new Desktop.
type Options struct {
	Config *config.Config
	Width  int
	Height int
}

// NewDesktop returns a demo host over a fresh engine.
func NewDesktop(opts Options) *Desktop {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	d := &Desktop{
		Width:     opts.Width,
		Height:    opts.Height,
		cfg:       cfg,
		workspace: 1,
		titles:    make(map[string]string),
		focused:   make(map[int]string),
	}
	d.driver = engine.NewDriver(d.workspaceBounds(), cfg.TileOptions())
	d.driver.SetActiveWorkspace(d.workspace)
	return d
}

// Driver exposes the engine for the frame loop and tests.
func (d *Desktop) Driver() *engine.Driver { return d.driver }

// workspaceBounds is the screen area available to tiles: everything
// above the one-line status bar.
func (d *Desktop) workspaceBounds() geo.Rect {
	return geo.Rect{X: 0, Y: 0, Width: d.Width, Height: max(d.Height-1, 0)}
}

// OpenWindow mints a synthetic window, inserts it into the active
// workspace's tree, and focuses it.
func (d *Desktop) OpenWindow() {
	if !d.cfg.Layout.TileByDefault {
		return
	}
	d.counter++
	id := uuid.NewString()
	d.titles[id] = fmt.Sprintf("term-%d", d.counter)
	d.driver.AddWindow(d.workspace, id)
	d.focused[d.workspace] = id
}

// CloseFocused removes the focused window and moves focus to the next
// remaining one.
func (d *Desktop) CloseFocused() {
	id := d.focused[d.workspace]
	if id == "" {
		return
	}
	d.driver.RemoveWindow(id)
	delete(d.titles, id)

	views := d.driver.Tree(d.workspace).Views()
	if len(views) > 0 {
		d.setFocus(views[len(views)-1])
	} else {
		d.focused[d.workspace] = ""
	}
}

// FocusNext cycles focus through the workspace's windows in layout
// order. step is +1 or -1.
func (d *Desktop) FocusNext(step int) {
	views := d.driver.Tree(d.workspace).Views()
	if len(views) == 0 {
		return
	}

	current := -1
	for i, v := range views {
		if v == d.focused[d.workspace] {
			current = i
			break
		}
	}
	next := (current + step + len(views)) % len(views)
	d.setFocus(views[next])
}

func (d *Desktop) setFocus(id string) {
	d.focused[d.workspace] = id
	d.driver.SetFocused(id)
}

// SwitchWorkspace changes the visible workspace.
func (d *Desktop) SwitchWorkspace(ws int) {
	if ws < 1 || ws > config.WorkspaceCount || ws == d.workspace {
		return
	}
	d.workspace = ws
	d.driver.SetActiveWorkspace(ws)
	if id := d.focused[ws]; id != "" {
		d.driver.SetFocused(id)
	}
}

// LayoutCommand forwards a layout command for the focused window.
func (d *Desktop) LayoutCommand(msg string) {
	id := d.focused[d.workspace]
	if id == "" {
		return
	}
	d.driver.Command(msg, id)
}

// ApplyConfig swaps in a freshly loaded configuration, reflowing every
// workspace. Used by the live reload watcher.
func (d *Desktop) ApplyConfig(cfg *config.Config) {
	d.cfg = cfg
	d.driver.SetOptions(cfg.TileOptions())
}

// FocusedWindow returns the focused window's ID, or "".
func (d *Desktop) FocusedWindow() string {
	return d.focused[d.workspace]
}
