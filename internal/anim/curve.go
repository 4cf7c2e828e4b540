// Package anim implements the time-based animation primitives used by
// the tiling layout: cubic bezier easing curves, animated scalar
// variables, and the composite animated geometry each tile node owns.
package anim

import "math"

// Curve is a cubic bezier easing curve anchored at (0,0) and (1,1),
// shaped by two control points. Control points outside [0,1] are valid
// and produce overshooting ("bouncy") curves. A Curve is immutable
// after construction.
type Curve struct {
	p1x, p1y float64
	p2x, p2y float64
}

// Linear is the identity easing curve.
var Linear = NewCurve(0, 0, 1, 1)

// NewCurve returns a curve with the given control points.
func NewCurve(p1x, p1y, p2x, p2y float64) *Curve {
	return &Curve{p1x: p1x, p1y: p1y, p2x: p2x, p2y: p2y}
}

// Eval maps a normalized time x to eased progress. Inputs at or below
// 0 return 0, at or above 1 return 1. In between the curve parameter u
// with bezierX(u) == x is found by Newton-Raphson and bezierY(u) is
// returned. The iteration is bounded and clamped, so the result is
// always finite.
func (c *Curve) Eval(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return c.bezierY(c.solveU(x))
}

func (c *Curve) bezierX(u float64) float64 {
	mu := 1 - u
	return 3*mu*mu*u*c.p1x + 3*mu*u*u*c.p2x + u*u*u
}

func (c *Curve) bezierY(u float64) float64 {
	mu := 1 - u
	return 3*mu*mu*u*c.p1y + 3*mu*u*u*c.p2y + u*u*u
}

// solveU finds u such that bezierX(u) is close to x. Eight Newton
// steps with early exit; when the derivative collapses the best u so
// far is accepted as approximate.
func (c *Curve) solveU(x float64) float64 {
	const (
		iterations = 8
		epsilon    = 1e-4
	)

	u := x
	for i := 0; i < iterations; i++ {
		dx := c.bezierX(u) - x
		if math.Abs(dx) < epsilon {
			break
		}

		mu := 1 - u
		derivative := 3*mu*mu*c.p1x + 6*mu*u*(c.p2x-c.p1x) + 3*u*u*(1-c.p2x)
		if math.Abs(derivative) < epsilon {
			break
		}

		u -= dx / derivative
		u = math.Min(math.Max(u, 0), 1)
	}
	return u
}
