package engine

import (
	"testing"
	"time"

	"github.com/hypergrid/hypergrid/internal/anim"
	"github.com/hypergrid/hypergrid/internal/geo"
	"github.com/hypergrid/hypergrid/internal/tile"
)

func testOptions() tile.Options {
	return tile.Options{
		GapIn:                5,
		GapOut:               10,
		SplitWidthMultiplier: 1.0,
		PopinScale:           0.8,
		Move:                 anim.Config{Curve: anim.Linear, Duration: 0},
		In:                   anim.Config{Curve: anim.Linear, Duration: 0},
		Out:                  anim.Config{Curve: anim.Linear, Duration: 0},
	}
}

func newTestDriver() *Driver {
	d := NewDriver(geo.Rect{Width: 1000, Height: 1000}, testOptions())
	d.SetActiveWorkspace(1)
	return d
}

func TestStructuralChangeArmsDriver(t *testing.T) {
	d := newTestDriver()
	if d.Armed() {
		t.Fatal("fresh driver should be disarmed")
	}

	d.AddWindow(1, "a")
	if !d.Armed() {
		t.Error("AddWindow should arm the driver")
	}
}

func TestQuietTickDisarms(t *testing.T) {
	d := newTestDriver()
	d.AddWindow(1, "a")

	// Zero durations mean everything snapped on insert: the first tick
	// finds nothing moving and disarms.
	if d.Tick() {
		t.Error("tick with snapped animations should report nothing moving")
	}
	if d.Armed() {
		t.Error("quiet tick should disarm the driver")
	}
}

func TestTickKeepsArmedWhileAnimating(t *testing.T) {
	opts := testOptions()
	opts.In = anim.Config{Curve: anim.Linear, Duration: time.Minute}
	d := NewDriver(geo.Rect{Width: 1000, Height: 1000}, opts)
	d.SetActiveWorkspace(1)

	d.AddWindow(1, "a")
	if !d.Tick() {
		t.Error("pop-in far from done should keep the tick reporting motion")
	}
	if !d.Armed() {
		t.Error("driver must stay armed while animations run")
	}
}

func TestFramesSkipDegenerateGoals(t *testing.T) {
	d := NewDriver(geo.Rect{Width: 15, Height: 15}, testOptions())
	d.SetActiveWorkspace(1)

	// Outer gap 10 on a 15x15 screen leaves a negative-size region.
	d.AddWindow(1, "a")
	if frames := d.Frames(); len(frames) != 0 {
		t.Errorf("Frames() = %d entries, want degenerate window skipped", len(frames))
	}
}

func TestWorkspaceIsolation(t *testing.T) {
	d := newTestDriver()
	d.AddWindow(1, "a")
	d.AddWindow(2, "b")

	frames := d.Frames()
	if len(frames) != 1 || frames[0].View != "a" {
		t.Fatalf("active workspace 1 frames = %+v, want only a", frames)
	}

	d.SetActiveWorkspace(2)
	frames = d.Frames()
	if len(frames) != 1 || frames[0].View != "b" {
		t.Fatalf("active workspace 2 frames = %+v, want only b", frames)
	}
}

func TestSwitchFinalizesTargetWorkspace(t *testing.T) {
	opts := testOptions()
	opts.Move = anim.Config{Curve: anim.Linear, Duration: time.Minute}
	d := NewDriver(geo.Rect{Width: 1000, Height: 1000}, opts)
	d.SetActiveWorkspace(1)

	d.AddWindow(2, "a")
	d.AddWindow(2, "b")

	// The trees on workspace 2 were mutated while hidden; switching to
	// it must snap every window to its goal rather than show mid-flight
	// rectangles.
	d.SetActiveWorkspace(2)
	for _, frame := range d.Frames() {
		if frame.Current != frame.Goal {
			t.Errorf("%s: current %+v != goal %+v after switch",
				frame.View, frame.Current, frame.Goal)
		}
	}
}

func TestRemoveWindowSearchesAllWorkspaces(t *testing.T) {
	d := newTestDriver()
	d.AddWindow(1, "a")
	d.AddWindow(2, "b")

	d.RemoveWindow("b")
	if d.Tree(2).HasView("b") {
		t.Error("window on a hidden workspace should still be removable")
	}
	if !d.Tree(1).HasView("a") {
		t.Error("removal must not touch other workspaces")
	}
}

func TestFramesIncludeDepartingWindows(t *testing.T) {
	opts := testOptions()
	opts.Out = anim.Config{Curve: anim.Linear, Duration: time.Minute}
	d := NewDriver(geo.Rect{Width: 1000, Height: 1000}, opts)
	d.SetActiveWorkspace(1)

	d.AddWindow(1, "a")
	d.AddWindow(1, "b")
	d.RemoveWindow("b")

	var departing *WindowFrame
	for i := range d.Frames() {
		frame := d.Frames()[i]
		if frame.View == "b" {
			departing = &frame
		}
	}
	if departing == nil {
		t.Fatal("draining pop-out missing from frames")
	}
	if !departing.Departing {
		t.Error("removed window's frame should be marked departing")
	}
}

func TestSetBoundsReflowsEveryWorkspace(t *testing.T) {
	d := newTestDriver()
	d.AddWindow(1, "a")
	d.AddWindow(2, "b")

	d.SetBounds(geo.Rect{Width: 500, Height: 500})

	want := geo.Rect{X: 10, Y: 10, Width: 480, Height: 480}
	for ws, view := range map[int]string{1: "a", 2: "b"} {
		got, ok := d.Tree(ws).ViewGoalGeometry(view)
		if !ok || got != want {
			t.Errorf("workspace %d window %s = %+v, want %+v", ws, view, got, want)
		}
	}
	if !d.Armed() {
		t.Error("bounds change should arm the driver")
	}
}

func TestCommandRoutesToActiveWorkspace(t *testing.T) {
	d := newTestDriver()
	d.AddWindow(1, "a")
	d.AddWindow(1, "b")
	d.Tick() // disarm

	d.Command("togglesplit", "a")
	if !d.Armed() {
		t.Error("layout command should arm the driver")
	}
	if d.Tree(1).Root().Dir() != tile.SplitHorizontal {
		t.Error("togglesplit did not reach the active workspace's tree")
	}
}
