package anim

import "github.com/hypergrid/hypergrid/internal/geo"

// Geometry is the animated state of one tile: four positional scalars
// plus scale and alpha for the pop-in/pop-out effect. Position and
// size animate with the "move" config passed to SetGoal; scale and
// alpha pick up the "in"/"out" configs when a pop starts.
type Geometry struct {
	x, y          Var[int]
	width, height Var[int]
	scale, alpha  Var[float64]
}

// NewGeometry returns a geometry pinned at the zero rectangle with
// full scale and opacity.
func NewGeometry() Geometry {
	return Geometry{
		x:      NewVar(0),
		y:      NewVar(0),
		width:  NewVar(0),
		height: NewVar(0),
		scale:  NewVar(1.0),
		alpha:  NewVar(1.0),
	}
}

// SetGoal animates the four positional scalars toward r.
func (g *Geometry) SetGoal(r geo.Rect, cfg Config, animate bool) {
	g.x.SetConfig(cfg)
	g.y.SetConfig(cfg)
	g.width.SetConfig(cfg)
	g.height.SetConfig(cfg)

	g.x.Set(r.X, animate)
	g.y.Set(r.Y, animate)
	g.width.Set(r.Width, animate)
	g.height.Set(r.Height, animate)
}

// Warp pins the positional scalars to r. Scale and alpha are left
// alone so a pop already in flight keeps playing.
func (g *Geometry) Warp(r geo.Rect) {
	g.x.Warp(r.X)
	g.y.Warp(r.Y)
	g.width.Warp(r.Width)
	g.height.Warp(r.Height)
}

// StartPopin plays the new-window effect: scale jumps to fromScale and
// alpha to zero, then both animate to 1.
func (g *Geometry) StartPopin(cfg Config, fromScale float64) {
	g.scale.SetConfig(cfg)
	g.alpha.SetConfig(cfg)

	g.scale.Warp(fromScale)
	g.scale.Set(1.0, true)
	g.alpha.Warp(0)
	g.alpha.Set(1.0, true)
}

// StartPopout plays the closing-window effect: scale animates down to
// toScale and alpha to zero. The owner must keep ticking this geometry
// until Animating reports false or the effect is never seen.
func (g *Geometry) StartPopout(cfg Config, toScale float64) {
	g.scale.SetConfig(cfg)
	g.alpha.SetConfig(cfg)

	g.scale.Set(toScale, true)
	g.alpha.Set(0, true)
}

// Tick advances all six scalars and reports whether any is still
// animating. Every scalar is ticked even after one reports done; they
// complete independently.
func (g *Geometry) Tick() bool {
	a := g.x.Tick()
	b := g.y.Tick()
	c := g.width.Tick()
	d := g.height.Tick()
	e := g.scale.Tick()
	f := g.alpha.Tick()
	return a || b || c || d || e || f
}

// Current returns the rectangle at the present tick.
func (g *Geometry) Current() geo.Rect {
	return geo.Rect{
		X:      g.x.Value(),
		Y:      g.y.Value(),
		Width:  g.width.Value(),
		Height: g.height.Value(),
	}
}

// Goal returns the rectangle the geometry is heading toward.
func (g *Geometry) Goal() geo.Rect {
	return geo.Rect{
		X:      g.x.Goal(),
		Y:      g.y.Goal(),
		Width:  g.width.Goal(),
		Height: g.height.Goal(),
	}
}

// Scale returns the current pop scale.
func (g *Geometry) Scale() float64 { return g.scale.Value() }

// Alpha returns the current pop opacity.
func (g *Geometry) Alpha() float64 { return g.alpha.Value() }

// Animating reports whether any constituent scalar is animating.
func (g *Geometry) Animating() bool {
	return g.x.Animating() || g.y.Animating() ||
		g.width.Animating() || g.height.Animating() ||
		g.scale.Animating() || g.alpha.Animating()
}
