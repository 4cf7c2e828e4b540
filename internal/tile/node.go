// Package tile implements the binary split tree behind the dwindle
// layout: leaves hold windows, internal nodes divide their rectangle
// between exactly two children, and every node owns an animated
// geometry that the per-frame tick advances toward its layout goal.
package tile

import (
	"github.com/hypergrid/hypergrid/internal/anim"
	"github.com/hypergrid/hypergrid/internal/geo"
)

// SplitDir is the axis an internal node divides its rectangle along.
type SplitDir int

const (
	// SplitHorizontal places the children side by side (left | right).
	SplitHorizontal SplitDir = iota
	// SplitVertical stacks the children (top / bottom).
	SplitVertical
)

// String returns the lowercase name of the direction.
func (d SplitDir) String() string {
	if d == SplitHorizontal {
		return "horizontal"
	}
	return "vertical"
}

const (
	minSplitRatio = 0.1
	maxSplitRatio = 0.9
)

// Node is one node of the layout tree. A leaf holds a window ID and
// has two nil children; a split holds a direction, a ratio, and two
// non-nil children. The only way to build a node is through NewLeaf
// and NewSplit, which keep that shape by construction.
//
// The parent pointer is a back-reference for upward traversal only;
// ownership always flows downward from the tree root.
type Node struct {
	parent   *Node
	children [2]*Node

	view string

	dir    SplitDir
	ratio  float64
	locked bool

	pseudotiled bool
	preferred   geo.Rect

	geom anim.Geometry
}

// NewLeaf returns a leaf node holding the given window.
func NewLeaf(view string) *Node {
	return &Node{
		view:  view,
		ratio: 0.5,
		geom:  anim.NewGeometry(),
	}
}

// NewSplit returns a split node owning the two children. Both children
// must be non-nil; their parent pointers are rewired to the new node.
func NewSplit(dir SplitDir, first, second *Node) *Node {
	n := &Node{
		dir:   dir,
		ratio: 0.5,
		geom:  anim.NewGeometry(),
	}
	n.children[0] = first
	n.children[1] = second
	first.parent = n
	second.parent = n
	return n
}

// IsLeaf reports whether the node holds a window rather than a split.
func (n *Node) IsLeaf() bool { return n.children[0] == nil }

// View returns the window ID of a leaf, or "" for a split.
func (n *Node) View() string { return n.view }

// Dir returns the split direction.
func (n *Node) Dir() SplitDir { return n.dir }

// SetDir sets the split direction.
func (n *Node) SetDir(dir SplitDir) { n.dir = dir }

// Ratio returns the share of the span given to the first child.
func (n *Node) Ratio() float64 { return n.ratio }

// SetRatio sets the split ratio, clamped to [0.1, 0.9] so neither
// child can be squeezed to nothing.
func (n *Node) SetRatio(ratio float64) {
	if ratio < minSplitRatio {
		ratio = minSplitRatio
	}
	if ratio > maxSplitRatio {
		ratio = maxSplitRatio
	}
	n.ratio = ratio
}

// SplitLocked reports whether the direction is pinned against
// aspect-ratio re-derivation.
func (n *Node) SplitLocked() bool { return n.locked }

// SetSplitLocked pins or unpins the split direction.
func (n *Node) SetSplitLocked(locked bool) { n.locked = locked }

// Pseudotiled reports whether the leaf keeps a preferred size inside
// its tile.
func (n *Node) Pseudotiled() bool { return n.pseudotiled }

// SetPseudotiled toggles pseudotiling.
func (n *Node) SetPseudotiled(pseudo bool) { n.pseudotiled = pseudo }

// PreferredSize returns the recorded preferred size of a pseudotiled
// leaf.
func (n *Node) PreferredSize() geo.Rect { return n.preferred }

// SetPreferredSize records the preferred size used while pseudotiled.
func (n *Node) SetPreferredSize(r geo.Rect) { n.preferred = r }

// Geometry returns the node's animated geometry.
func (n *Node) Geometry() *anim.Geometry { return &n.geom }

// Parent returns the owning split, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Child returns the child at idx (0 or 1), or nil for a leaf.
func (n *Node) Child(idx int) *Node {
	if idx < 0 || idx > 1 {
		return nil
	}
	return n.children[idx]
}

// setChild replaces the child at idx and rewires its parent pointer.
func (n *Node) setChild(idx int, child *Node) {
	if idx < 0 || idx > 1 {
		return
	}
	n.children[idx] = child
	if child != nil {
		child.parent = n
	}
}

// ChildIndex returns which slot this node occupies in its parent, or
// -1 at the root. Identity comparison, not value comparison.
func (n *Node) ChildIndex() int {
	if n.parent == nil {
		return -1
	}
	if n.parent.children[0] == n {
		return 0
	}
	if n.parent.children[1] == n {
		return 1
	}
	return -1
}

// Sibling returns the other child of the parent, or nil at the root.
func (n *Node) Sibling() *Node {
	idx := n.ChildIndex()
	if idx < 0 {
		return nil
	}
	return n.parent.children[1-idx]
}

// ApplyLayout assigns bounds as this node's goal geometry and, for a
// split, partitions bounds between the children and recurses.
//
// Unless suppressed by opts.PreserveSplit or a per-node lock, the
// split direction is re-derived from the aspect ratio of bounds on
// every pass. That re-derivation is what makes the layout dynamic
// rather than strictly alternating.
func (n *Node) ApplyLayout(bounds geo.Rect, opts Options, animate bool) {
	n.geom.SetGoal(bounds, opts.Move, animate)

	if n.IsLeaf() {
		return
	}

	if !opts.PreserveSplit && !n.locked {
		if float64(bounds.Width)*opts.SplitWidthMultiplier > float64(bounds.Height) {
			n.dir = SplitHorizontal
		} else {
			n.dir = SplitVertical
		}
	}

	first, second := partition(bounds, n.dir, n.ratio, opts.GapIn)
	n.children[0].ApplyLayout(first, opts, animate)
	n.children[1].ApplyLayout(second, opts, animate)
}

// partition divides bounds along dir: the first child gets ratio of
// the span left after removing the inner gap, the second child gets
// the remainder, and the gap sits between them. The cross axis passes
// through unchanged. With small bounds and an extreme ratio a child
// may end up with a non-positive span; that is propagated, not fixed,
// and filtered out when geometry is applied.
func partition(bounds geo.Rect, dir SplitDir, ratio float64, gapIn int) (first, second geo.Rect) {
	if dir == SplitHorizontal {
		available := bounds.Width - gapIn
		w1 := int(float64(available) * ratio)
		first = geo.Rect{X: bounds.X, Y: bounds.Y, Width: w1, Height: bounds.Height}
		second = geo.Rect{X: bounds.X + w1 + gapIn, Y: bounds.Y, Width: available - w1, Height: bounds.Height}
		return first, second
	}

	available := bounds.Height - gapIn
	h1 := int(float64(available) * ratio)
	first = geo.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: h1}
	second = geo.Rect{X: bounds.X, Y: bounds.Y + h1 + gapIn, Width: bounds.Width, Height: available - h1}
	return first, second
}

// TickAnimation advances this node's geometry and every descendant's,
// reporting whether anything is still in flight. One call on the root
// drives the whole tree for a frame.
func (n *Node) TickAnimation() bool {
	animating := n.geom.Tick()
	if !n.IsLeaf() {
		a := n.children[0].TickAnimation()
		b := n.children[1].TickAnimation()
		animating = animating || a || b
	}
	return animating
}

// FindView returns the leaf holding the given window, or nil.
func (n *Node) FindView(view string) *Node {
	if n.IsLeaf() {
		if n.view == view {
			return n
		}
		return nil
	}
	if found := n.children[0].FindView(view); found != nil {
		return found
	}
	return n.children[1].FindView(view)
}

// CollectViews appends all leaf window IDs in pre-order, first child
// before second.
func (n *Node) CollectViews(out *[]string) {
	if n.IsLeaf() {
		if n.view != "" {
			*out = append(*out, n.view)
		}
		return
	}
	n.children[0].CollectViews(out)
	n.children[1].CollectViews(out)
}

// CountLeaves returns the number of windows under this node.
func (n *Node) CountLeaves() int {
	if n.IsLeaf() {
		if n.view == "" {
			return 0
		}
		return 1
	}
	return n.children[0].CountLeaves() + n.children[1].CountLeaves()
}
