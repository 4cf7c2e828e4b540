package anim

import "time"

// timeNow is swapped out by tests that need a deterministic clock.
var timeNow = time.Now

// Scalar is the set of value types an animated variable can carry.
type Scalar interface {
	~int | ~float64
}

// Config pairs an easing curve with a duration. A zero or negative
// duration disables animation: Set degrades to an immediate snap.
type Config struct {
	Curve    *Curve
	Duration time.Duration
}

// Var is a single animated value. It interpolates from a start value
// toward a goal over the configured duration, advanced by explicit
// per-frame Tick calls.
//
// Invariant: when not animating, value == start == goal.
type Var[T Scalar] struct {
	value, start, goal T

	curve     *Curve
	duration  time.Duration
	animating bool
	startTime time.Time
}

// NewVar returns a variable pinned at initial.
func NewVar[T Scalar](initial T) Var[T] {
	return Var[T]{value: initial, start: initial, goal: initial}
}

// SetConfig sets the curve and duration used by subsequent Set calls.
// In-flight animations keep the timing they started with.
func (v *Var[T]) SetConfig(cfg Config) {
	v.curve = cfg.Curve
	v.duration = cfg.Duration
}

// Set starts animating toward goal. With animate=false, or when the
// configured duration is zero or negative, the value snaps instead.
// Calling Set mid-animation retargets from the current interpolated
// value, not the old goal, so rapid layout changes stay continuous.
func (v *Var[T]) Set(goal T, animate bool) {
	if !animate || v.duration <= 0 {
		v.Warp(goal)
		return
	}

	v.start = v.value
	v.goal = goal
	v.startTime = timeNow()
	v.animating = true
}

// Warp pins the variable to value with no transition.
func (v *Var[T]) Warp(value T) {
	v.value = value
	v.start = value
	v.goal = value
	v.animating = false
}

// Tick advances the animation to the current time. It returns true
// while the animation is still in progress. Once elapsed time reaches
// the duration the value snaps to the goal exactly, regardless of
// floating point drift, and false is returned.
func (v *Var[T]) Tick() bool {
	if !v.animating {
		return false
	}

	elapsed := timeNow().Sub(v.startTime)
	progress := float64(elapsed) / float64(v.duration)
	if progress < 0 {
		progress = 0
	}
	if progress >= 1 {
		v.value = v.goal
		v.animating = false
		return false
	}

	eased := progress
	if v.curve != nil {
		eased = v.curve.Eval(progress)
	}
	v.value = lerp(v.start, v.goal, eased)
	return true
}

// Value returns the current interpolated value.
func (v *Var[T]) Value() T { return v.value }

// Goal returns the value the variable is heading toward.
func (v *Var[T]) Goal() T { return v.goal }

// Animating reports whether a transition is in flight.
func (v *Var[T]) Animating() bool { return v.animating }

func lerp[T Scalar](a, b T, t float64) T {
	return T(float64(a) + float64(b-a)*t)
}
