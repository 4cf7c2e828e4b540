package tile

import (
	"github.com/hypergrid/hypergrid/internal/anim"
	"github.com/hypergrid/hypergrid/internal/geo"
)

// ForceSplit controls which child slot a newly inserted window takes.
type ForceSplit int

const (
	// ForceSplitMouse places the new window by cursor side when smart
	// split is on, otherwise after the existing window.
	ForceSplitMouse ForceSplit = iota
	// ForceSplitFirst always places the new window left/top.
	ForceSplitFirst
	// ForceSplitSecond always places the new window right/bottom.
	ForceSplitSecond
)

// Options carries the already-parsed scalar configuration a tree works
// with. Durations and curves are split per animation kind the way the
// compositor configures them: Move for layout changes, In for pop-in,
// Out for pop-out.
type Options struct {
	GapIn  int
	GapOut int

	PreserveSplit        bool
	SplitWidthMultiplier float64
	ForceSplit           ForceSplit
	SmartSplit           bool

	PopinScale float64

	Move anim.Config
	In   anim.Config
	Out  anim.Config
}

// DepartingWindow is the render state of a window whose pop-out is
// still playing after its structural removal from the tree.
type DepartingWindow struct {
	View  string
	Rect  geo.Rect
	Scale float64
	Alpha float64
}

// Tree is the layout tree of one workspace. It owns the root node,
// the workspace bounds, and the nodes whose pop-out animation is still
// draining. All methods are single-goroutine; the tree is not safe for
// concurrent mutation.
type Tree struct {
	root   *Node
	bounds geo.Rect
	opts   Options

	focused string
	cursor  geo.Point

	// departing holds removed leaves until their pop-out completes.
	departing []*Node
}

// NewTree returns an empty tree over the given bounds.
func NewTree(bounds geo.Rect, opts Options) *Tree {
	return &Tree{bounds: bounds, opts: opts}
}

// SetOptions replaces the tree's configuration. Takes effect on the
// next layout pass or insertion.
func (t *Tree) SetOptions(opts Options) { t.opts = opts }

// Options returns the tree's current configuration.
func (t *Tree) Options() Options { return t.opts }

// SetBounds updates the workspace bounding rectangle. The caller
// decides when to recalculate.
func (t *Tree) SetBounds(bounds geo.Rect) { t.bounds = bounds }

// Bounds returns the workspace bounding rectangle.
func (t *Tree) Bounds() geo.Rect { return t.bounds }

// SetFocused records which window the host reports as focused. New
// windows split the focused window's tile.
func (t *Tree) SetFocused(view string) { t.focused = view }

// SetCursor records the cursor position consumed by smart split.
func (t *Tree) SetCursor(p geo.Point) { t.cursor = p }

// Root returns the root node, or nil when the tree is empty.
func (t *Tree) Root() *Node { return t.root }

// IsEmpty reports whether the tree manages no windows.
func (t *Tree) IsEmpty() bool { return t.root == nil || t.root.CountLeaves() == 0 }

// effectiveBounds is the workspace rectangle with the outer gap
// applied on all sides.
func (t *Tree) effectiveBounds() geo.Rect {
	return t.bounds.Inset(t.opts.GapOut)
}

// AddView inserts a window into the tree.
//
// The first window becomes the root and is warped straight to the
// gapped bounds (there is nothing to animate from). Later windows
// split a target leaf: the focused window's leaf when known, otherwise
// the conventional dwindle insertion point reached by always
// descending into the second child. The new leaf is warped into the
// half it will occupy before its pop-in starts, so the pop plays from
// a plausible position.
func (t *Tree) AddView(view string, animate bool) {
	newLeaf := NewLeaf(view)
	bounds := t.effectiveBounds()

	switch {
	case t.root == nil:
		t.root = newLeaf
		newLeaf.Geometry().Warp(bounds)
		newLeaf.Geometry().StartPopin(t.opts.In, t.opts.PopinScale)

	case t.root.IsLeaf():
		existing := t.root
		dir := t.splitDirection(bounds, existing)

		newOnFirst := t.opts.ForceSplit == ForceSplitFirst
		first, second := existing, newLeaf
		if newOnFirst {
			first, second = newLeaf, existing
		}

		newLeaf.Geometry().Warp(newWindowStart(bounds, dir, newOnFirst))
		newLeaf.Geometry().StartPopin(t.opts.In, t.opts.PopinScale)

		t.root = NewSplit(dir, first, second)

	default:
		target := (*Node)(nil)
		if t.focused != "" {
			target = t.root.FindView(t.focused)
		}
		if target == nil {
			target = lastLeaf(t.root)
		}
		t.insertAtLeaf(target, newLeaf)
		newLeaf.Geometry().StartPopin(t.opts.In, t.opts.PopinScale)
	}

	t.RecalculateLayout(animate)
}

// insertAtLeaf replaces existing in its parent with a new split whose
// children are existing and newLeaf.
func (t *Tree) insertAtLeaf(existing, newLeaf *Node) {
	parent := existing.parent
	slot := existing.ChildIndex()

	refRect := existing.Geometry().Goal()
	dir := t.splitDirection(refRect, existing)

	newOnSecond := t.opts.ForceSplit != ForceSplitFirst
	if t.opts.ForceSplit == ForceSplitMouse && t.opts.SmartSplit {
		center := refRect.Center()
		if dir == SplitHorizontal {
			newOnSecond = t.cursor.X > center.X
		} else {
			newOnSecond = t.cursor.Y > center.Y
		}
	}

	newLeaf.Geometry().Warp(newWindowStart(refRect, dir, !newOnSecond))

	first, second := existing, newLeaf
	if !newOnSecond {
		first, second = newLeaf, existing
	}

	split := NewSplit(dir, first, second)
	if parent == nil {
		split.parent = nil
		t.root = split
	} else {
		parent.setChild(slot, split)
	}
}

// RemoveView takes a window out of the tree. The leaf's pop-out starts
// immediately and the node is parked on the departing list so the
// animation stays visible; structurally, the sibling is spliced up to
// replace the leaf's parent, collapsing exactly one split level.
// Unknown windows are ignored.
func (t *Tree) RemoveView(view string, animate bool) {
	if t.root == nil {
		return
	}
	node := t.root.FindView(view)
	if node == nil {
		return
	}

	node.Geometry().StartPopout(t.opts.Out, t.opts.PopinScale)
	if node.Geometry().Animating() {
		t.departing = append(t.departing, node)
	}

	parent := node.parent
	if parent == nil {
		t.root = nil
		return
	}

	sibling := node.Sibling()
	node.parent = nil

	grandparent := parent.parent
	if grandparent == nil {
		t.root = sibling
		sibling.parent = nil
	} else {
		grandparent.setChild(parent.ChildIndex(), sibling)
	}

	t.RecalculateLayout(animate)
}

// HasView reports whether the tree manages the given window.
func (t *Tree) HasView(view string) bool {
	return t.root != nil && t.root.FindView(view) != nil
}

// Views returns all managed window IDs in layout order.
func (t *Tree) Views() []string {
	var views []string
	if t.root != nil {
		t.root.CollectViews(&views)
	}
	return views
}

// RecalculateLayout walks the tree assigning goal geometry derived
// from the current bounds and options.
func (t *Tree) RecalculateLayout(animate bool) {
	if t.root == nil {
		return
	}
	t.root.ApplyLayout(t.effectiveBounds(), t.opts, animate)
}

// TickAnimations advances every animation for one frame, including the
// pop-outs of already-removed windows, and reports whether anything is
// still moving. Departing nodes are dropped once their pop-out ends.
func (t *Tree) TickAnimations() bool {
	animating := false
	if t.root != nil {
		animating = t.root.TickAnimation()
	}

	remaining := t.departing[:0]
	for _, node := range t.departing {
		if node.Geometry().Tick() {
			animating = true
			remaining = append(remaining, node)
		}
	}
	t.departing = remaining

	return animating
}

// Departing returns the render state of windows whose pop-out is still
// draining.
func (t *Tree) Departing() []DepartingWindow {
	out := make([]DepartingWindow, 0, len(t.departing))
	for _, node := range t.departing {
		g := node.Geometry()
		out = append(out, DepartingWindow{
			View:  node.View(),
			Rect:  g.Current(),
			Scale: g.Scale(),
			Alpha: g.Alpha(),
		})
	}
	return out
}

// ViewGeometry returns the current animated rectangle for a window.
func (t *Tree) ViewGeometry(view string) (geo.Rect, bool) {
	node := t.findView(view)
	if node == nil {
		return geo.Rect{}, false
	}
	return node.Geometry().Current(), true
}

// ViewGoalGeometry returns the rectangle a window is heading toward.
func (t *Tree) ViewGoalGeometry(view string) (geo.Rect, bool) {
	node := t.findView(view)
	if node == nil {
		return geo.Rect{}, false
	}
	return node.Geometry().Goal(), true
}

// ViewScaleAlpha returns the pop scale and alpha for a window. Unknown
// windows report full scale and opacity.
func (t *Tree) ViewScaleAlpha(view string) (scale, alpha float64) {
	node := t.findView(view)
	if node == nil {
		return 1, 1
	}
	return node.Geometry().Scale(), node.Geometry().Alpha()
}

func (t *Tree) findView(view string) *Node {
	if t.root == nil {
		return nil
	}
	return t.root.FindView(view)
}

// HandleLayoutMessage runs a layout command against the node holding
// target, or the focused window when target is empty.
//
//	togglesplit — flip and lock the parent's direction
//	swapnext / swapprev — exchange the leaf with its sibling
//	pseudo — toggle pseudotiling, recording the current size
func (t *Tree) HandleLayoutMessage(msg, target string) {
	if t.root == nil {
		return
	}
	if target == "" {
		target = t.focused
	}
	node := t.root.FindView(target)
	if node == nil {
		return
	}

	switch msg {
	case "togglesplit":
		parent := node.parent
		if parent == nil {
			return
		}
		if parent.Dir() == SplitHorizontal {
			parent.SetDir(SplitVertical)
		} else {
			parent.SetDir(SplitHorizontal)
		}
		parent.SetSplitLocked(true)
		t.RecalculateLayout(true)

	case "swapnext", "swapprev":
		// A binary tree offers exactly one swap partner, so next and
		// prev collapse to the same exchange.
		sibling := node.Sibling()
		if sibling == nil {
			return
		}
		parent := node.parent
		idx := node.ChildIndex()
		parent.setChild(idx, sibling)
		parent.setChild(1-idx, node)
		t.RecalculateLayout(true)

	case "pseudo":
		node.SetPseudotiled(!node.Pseudotiled())
		if node.Pseudotiled() {
			node.SetPreferredSize(node.Geometry().Current())
		}
		t.RecalculateLayout(true)
	}
}

// splitDirection picks the axis for a new split. With smart split and
// a known cursor the axis follows the cursor's offset from the
// reference tile's center, normalized by the half extents. Otherwise
// wide regions split side by side and tall regions stack.
func (t *Tree) splitDirection(ref geo.Rect, existing *Node) SplitDir {
	if t.opts.SmartSplit && existing != nil {
		nodeRect := existing.Geometry().Goal()
		if nodeRect.Width > 0 && nodeRect.Height > 0 {
			center := nodeRect.Center()
			dx := abs(t.cursor.X - center.X)
			dy := abs(t.cursor.Y - center.Y)
			relX := float64(dx) / (float64(nodeRect.Width) / 2)
			relY := float64(dy) / (float64(nodeRect.Height) / 2)
			if relX > relY {
				return SplitHorizontal
			}
			return SplitVertical
		}
	}

	if float64(ref.Width)*t.opts.SplitWidthMultiplier > float64(ref.Height) {
		return SplitHorizontal
	}
	return SplitVertical
}

// newWindowStart is the half of bounds a new window will occupy, used
// to warp it into place before its pop-in so the animation starts from
// a plausible rectangle.
func newWindowStart(bounds geo.Rect, dir SplitDir, newOnFirst bool) geo.Rect {
	if dir == SplitHorizontal {
		half := bounds.Width / 2
		if newOnFirst {
			return geo.Rect{X: bounds.X, Y: bounds.Y, Width: half, Height: bounds.Height}
		}
		return geo.Rect{X: bounds.X + half, Y: bounds.Y, Width: half, Height: bounds.Height}
	}
	half := bounds.Height / 2
	if newOnFirst {
		return geo.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: half}
	}
	return geo.Rect{X: bounds.X, Y: bounds.Y + half, Width: bounds.Width, Height: half}
}

// lastLeaf descends into second children, the dwindle insertion point.
func lastLeaf(n *Node) *Node {
	for !n.IsLeaf() {
		n = n.children[1]
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
