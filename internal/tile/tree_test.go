package tile

import (
	"testing"
	"time"

	"github.com/hypergrid/hypergrid/internal/anim"
	"github.com/hypergrid/hypergrid/internal/geo"
)

// testOptions uses zero durations so layout assertions are exact: every
// Set snaps straight to its goal.
func testOptions() Options {
	return Options{
		GapIn:                5,
		GapOut:               10,
		SplitWidthMultiplier: 1.0,
		PopinScale:           0.8,
		Move:                 anim.Config{Curve: anim.Linear, Duration: 0},
		In:                   anim.Config{Curve: anim.Linear, Duration: 0},
		Out:                  anim.Config{Curve: anim.Linear, Duration: 0},
	}
}

func testBounds() geo.Rect {
	return geo.Rect{X: 0, Y: 0, Width: 1000, Height: 1000}
}

func TestAddFirstWindowFillsGappedBounds(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)

	got, ok := tree.ViewGoalGeometry("a")
	if !ok {
		t.Fatal("window not found after insert")
	}
	want := geo.Rect{X: 10, Y: 10, Width: 980, Height: 980}
	if got != want {
		t.Errorf("first window rect = %+v, want %+v", got, want)
	}
}

func TestSecondWindowStacksInSquareBounds(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)
	tree.AddView("b", true)

	// Square region with multiplier 1.0 is not strictly wider than
	// tall, so the split stacks. Inner gap 5 leaves 975 to divide.
	wantA := geo.Rect{X: 10, Y: 10, Width: 980, Height: 487}
	wantB := geo.Rect{X: 10, Y: 502, Width: 980, Height: 488}

	gotA, _ := tree.ViewGoalGeometry("a")
	gotB, _ := tree.ViewGoalGeometry("b")
	if gotA != wantA {
		t.Errorf("a = %+v, want %+v", gotA, wantA)
	}
	if gotB != wantB {
		t.Errorf("b = %+v, want %+v", gotB, wantB)
	}
}

func TestThirdWindowSplitsFocusedTile(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)
	tree.AddView("b", true)

	tree.SetFocused("a")
	tree.AddView("c", true)

	// a's tile (980x487) is wider than tall, so it splits side by side
	// while b keeps its full row.
	wantA := geo.Rect{X: 10, Y: 10, Width: 487, Height: 487}
	wantC := geo.Rect{X: 502, Y: 10, Width: 488, Height: 487}
	wantB := geo.Rect{X: 10, Y: 502, Width: 980, Height: 488}

	for view, want := range map[string]geo.Rect{"a": wantA, "b": wantB, "c": wantC} {
		got, ok := tree.ViewGoalGeometry(view)
		if !ok {
			t.Fatalf("window %q missing", view)
		}
		if got != want {
			t.Errorf("%s = %+v, want %+v", view, got, want)
		}
	}
}

func TestInsertFallsBackToDeepestSecondLeaf(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)
	tree.AddView("b", true)
	tree.SetFocused("gone")
	tree.AddView("c", true)

	// With no focused leaf the new window splits the last leaf reached
	// by descending second children, which is b.
	if got := tree.Views(); len(got) != 3 {
		t.Fatalf("Views() = %v, want 3 windows", got)
	}
	gotA, _ := tree.ViewGoalGeometry("a")
	if gotA != (geo.Rect{X: 10, Y: 10, Width: 980, Height: 487}) {
		t.Errorf("a should keep its full row, got %+v", gotA)
	}
}

func TestLeafCountInvariant(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	views := []string{"a", "b", "c", "d", "e"}

	for i, v := range views {
		tree.AddView(v, true)
		if got := tree.Root().CountLeaves(); got != i+1 {
			t.Fatalf("after adding %s: CountLeaves() = %d, want %d", v, got, i+1)
		}
	}
	for i, v := range views {
		tree.RemoveView(v, true)
		want := len(views) - i - 1
		got := 0
		if tree.Root() != nil {
			got = tree.Root().CountLeaves()
		}
		if got != want {
			t.Fatalf("after removing %s: CountLeaves() = %d, want %d", v, got, want)
		}
	}
	if !tree.IsEmpty() {
		t.Error("tree should be empty after removing every window")
	}
}

func TestRemoveSplicesSibling(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)
	tree.AddView("b", true)
	tree.SetFocused("a")
	tree.AddView("c", true)

	tree.RemoveView("c", true)

	// a and b are back to the two-window layout.
	wantA := geo.Rect{X: 10, Y: 10, Width: 980, Height: 487}
	wantB := geo.Rect{X: 10, Y: 502, Width: 980, Height: 488}
	gotA, _ := tree.ViewGoalGeometry("a")
	gotB, _ := tree.ViewGoalGeometry("b")
	if gotA != wantA {
		t.Errorf("a = %+v, want %+v", gotA, wantA)
	}
	if gotB != wantB {
		t.Errorf("b = %+v, want %+v", gotB, wantB)
	}
	if tree.HasView("c") {
		t.Error("removed window still present")
	}
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)

	tree.RemoveView("nope", true)
	if !tree.HasView("a") {
		t.Error("unrelated removal must not disturb the tree")
	}
}

func TestRecalculateLayoutIdempotent(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)
	tree.AddView("b", true)
	tree.AddView("c", true)

	before := make(map[string]geo.Rect)
	for _, v := range tree.Views() {
		before[v], _ = tree.ViewGoalGeometry(v)
	}

	tree.RecalculateLayout(false)
	for v, want := range before {
		got, _ := tree.ViewGoalGeometry(v)
		if got != want {
			t.Errorf("%s moved on idempotent recalc: %+v -> %+v", v, want, got)
		}
	}
}

func TestToggleSplitFlipsAndLocks(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)
	tree.AddView("b", true)

	tree.HandleLayoutMessage("togglesplit", "a")

	root := tree.Root()
	if root.Dir() != SplitHorizontal {
		t.Errorf("dir = %v, want horizontal after toggle", root.Dir())
	}
	if !root.SplitLocked() {
		t.Error("toggled split must be locked against re-derivation")
	}

	// The lock must survive another layout pass over a square region
	// that would otherwise re-derive vertical.
	tree.RecalculateLayout(false)
	if root.Dir() != SplitHorizontal {
		t.Error("locked direction was re-derived")
	}

	wantA := geo.Rect{X: 10, Y: 10, Width: 487, Height: 980}
	gotA, _ := tree.ViewGoalGeometry("a")
	if gotA != wantA {
		t.Errorf("a = %+v, want %+v", gotA, wantA)
	}
}

func TestSwapExchangesSiblings(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)
	tree.AddView("b", true)

	rectA, _ := tree.ViewGoalGeometry("a")
	rectB, _ := tree.ViewGoalGeometry("b")

	tree.HandleLayoutMessage("swapnext", "a")

	gotA, _ := tree.ViewGoalGeometry("a")
	gotB, _ := tree.ViewGoalGeometry("b")
	if gotA != rectB || gotB != rectA {
		t.Errorf("swap: a=%+v b=%+v, want a=%+v b=%+v", gotA, gotB, rectB, rectA)
	}

	// swapprev is the same exchange in a binary tree.
	tree.HandleLayoutMessage("swapprev", "a")
	gotA, _ = tree.ViewGoalGeometry("a")
	if gotA != rectA {
		t.Errorf("swap back: a = %+v, want %+v", gotA, rectA)
	}
}

func TestPseudoRecordsPreferredSize(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)

	tree.HandleLayoutMessage("pseudo", "a")

	node := tree.Root().FindView("a")
	if !node.Pseudotiled() {
		t.Fatal("pseudo should enable pseudotiling")
	}
	if node.PreferredSize() != node.Geometry().Current() {
		t.Errorf("preferred = %+v, want current rect %+v",
			node.PreferredSize(), node.Geometry().Current())
	}

	tree.HandleLayoutMessage("pseudo", "a")
	if node.Pseudotiled() {
		t.Error("second pseudo should disable pseudotiling")
	}
}

func TestForceSplitFirstPlacesNewWindowLeading(t *testing.T) {
	opts := testOptions()
	opts.ForceSplit = ForceSplitFirst
	tree := NewTree(testBounds(), opts)
	tree.AddView("a", true)
	tree.AddView("b", true)

	// New window takes the top slot of the stacked split.
	gotB, _ := tree.ViewGoalGeometry("b")
	want := geo.Rect{X: 10, Y: 10, Width: 980, Height: 487}
	if gotB != want {
		t.Errorf("b = %+v, want leading slot %+v", gotB, want)
	}
}

func TestSmartSplitFollowsCursor(t *testing.T) {
	opts := testOptions()
	opts.SmartSplit = true
	tree := NewTree(testBounds(), opts)
	tree.AddView("a", true)
	tree.AddView("b", true)
	tree.SetFocused("b")

	// Cursor far right of b's center: split side by side, new window on
	// the right half.
	tree.SetCursor(geo.Point{X: 950, Y: 700})
	tree.AddView("c", true)

	gotB, _ := tree.ViewGoalGeometry("b")
	gotC, _ := tree.ViewGoalGeometry("c")
	if gotC.X <= gotB.X {
		t.Errorf("cursor on the right should place c right of b: b=%+v c=%+v", gotB, gotC)
	}
	if gotC.Y != gotB.Y {
		t.Errorf("side-by-side split should share Y: b=%+v c=%+v", gotB, gotC)
	}
}

func TestRatioClamp(t *testing.T) {
	n := NewLeaf("a")

	n.SetRatio(0.05)
	if n.Ratio() != 0.1 {
		t.Errorf("SetRatio(0.05) -> %v, want clamp to 0.1", n.Ratio())
	}
	n.SetRatio(0.95)
	if n.Ratio() != 0.9 {
		t.Errorf("SetRatio(0.95) -> %v, want clamp to 0.9", n.Ratio())
	}
	n.SetRatio(0.4)
	if n.Ratio() != 0.4 {
		t.Errorf("SetRatio(0.4) -> %v, want unchanged", n.Ratio())
	}
}

func TestPopinStartsScaledAndTransparent(t *testing.T) {
	opts := testOptions()
	opts.In = anim.Config{Curve: anim.Linear, Duration: time.Second}
	tree := NewTree(testBounds(), opts)
	tree.AddView("a", true)

	scale, alpha := tree.ViewScaleAlpha("a")
	if scale != 0.8 {
		t.Errorf("pop-in start scale = %v, want 0.8", scale)
	}
	if alpha != 0 {
		t.Errorf("pop-in start alpha = %v, want 0", alpha)
	}
}

func TestDepartingWindowDrains(t *testing.T) {
	opts := testOptions()
	opts.Out = anim.Config{Curve: anim.Linear, Duration: time.Millisecond}
	tree := NewTree(testBounds(), opts)
	tree.AddView("a", true)
	tree.AddView("b", true)

	tree.RemoveView("b", true)
	if len(tree.Departing()) != 1 {
		t.Fatalf("Departing() = %d windows, want 1", len(tree.Departing()))
	}

	time.Sleep(5 * time.Millisecond)
	tree.TickAnimations()
	if len(tree.Departing()) != 0 {
		t.Errorf("pop-out should drain once its duration elapses")
	}
}

func TestZeroDurationPopoutNeverLingers(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)
	tree.RemoveView("a", true)

	if len(tree.Departing()) != 0 {
		t.Error("zero-duration pop-out must not join the departing list")
	}
	if !tree.IsEmpty() {
		t.Error("tree should be empty")
	}
}

func TestViewsPreOrder(t *testing.T) {
	tree := NewTree(testBounds(), testOptions())
	tree.AddView("a", true)
	tree.AddView("b", true)
	tree.SetFocused("a")
	tree.AddView("c", true)

	got := tree.Views()
	want := []string{"a", "c", "b"}
	if len(got) != len(want) {
		t.Fatalf("Views() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Views() = %v, want %v", got, want)
		}
	}
}
