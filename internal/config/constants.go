package config

import "time"

// =============================================================================
// Frame Rates
// =============================================================================

const (
	// NormalFPS is the refresh rate while animations are in flight.
	NormalFPS = 60

	// IdleFPS is the refresh rate when nothing is animating; the tick
	// loop only needs to notice structural changes.
	IdleFPS = 10
)

// =============================================================================
// Animation Defaults
// =============================================================================

const (
	// DefaultAnimationDuration is the fallback for all animation kinds
	// when the config does not override them.
	DefaultAnimationDuration = 300 * time.Millisecond

	// DefaultPopinPercent is the scale a new window pops in from (and
	// a closing window shrinks to).
	DefaultPopinPercent = 0.8
)

// DefaultBezier is the default easing quadruple, a standard ease
// curve. Per-kind quadruples that are all zero fall back to this.
var DefaultBezier = [4]float64{0.25, 0.1, 0.25, 1.0}

// =============================================================================
// Layout Defaults
// =============================================================================

const (
	// DefaultGapIn is the spacing between sibling tiles.
	DefaultGapIn = 5

	// DefaultGapOut is the spacing between the tree and the workspace
	// edge.
	DefaultGapOut = 10

	// DefaultSplitWidthMultiplier scales width in the aspect-ratio
	// test; raise it on ultrawide workspaces.
	DefaultSplitWidthMultiplier = 1.0
)

// =============================================================================
// Workspaces
// =============================================================================

const (
	// WorkspaceCount is the number of workspaces the demo host offers.
	WorkspaceCount = 9
)
