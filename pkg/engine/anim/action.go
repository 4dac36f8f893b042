// Package anim provides timed visual effects for menu entries and the
// scheduler that runs them from a frame loop.
package anim

import (
	"math"
	"time"
)

// Transform is the visual state an effect mutates.
// Rotation is in degrees, clockwise.
type Transform struct {
	Scale    float64
	Rotation float64
}

// Identity returns a transform with unit scale and no rotation.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Step applies an effect to a transform at progress 0..1.
type Step func(t *Transform, progress float64)

// Action is an effect descriptor. Descriptors are immutable and may be shared
// between targets; all per-run state lives in the Step returned by Start.
type Action interface {
	Duration() time.Duration
	// Start captures the target's current state and returns the stepper.
	Start(t *Transform) Step
	Reverse() Action
}

type scaleTo struct {
	to       float64
	duration time.Duration
}

// ScaleTo scales the target to the given factor over d.
func ScaleTo(scale float64, d time.Duration) Action {
	return scaleTo{to: scale, duration: d}
}

func (a scaleTo) Duration() time.Duration { return a.duration }
func (a scaleTo) Reverse() Action         { return a }

func (a scaleTo) Start(t *Transform) Step {
	from := t.Scale
	return func(t *Transform, p float64) {
		t.Scale = from + (a.to-from)*p
	}
}

type rotateTo struct {
	angle    float64
	duration time.Duration
}

// RotateTo rotates the target to an absolute angle over d.
func RotateTo(angle float64, d time.Duration) Action {
	return rotateTo{angle: angle, duration: d}
}

func (a rotateTo) Duration() time.Duration { return a.duration }
func (a rotateTo) Reverse() Action         { return a }

func (a rotateTo) Start(t *Transform) Step {
	from := t.Rotation
	return func(t *Transform, p float64) {
		t.Rotation = from + (a.angle-from)*p
	}
}

type rotateBy struct {
	angle    float64
	duration time.Duration
}

// RotateBy rotates the target by a relative angle over d.
func RotateBy(angle float64, d time.Duration) Action {
	return rotateBy{angle: angle, duration: d}
}

func (a rotateBy) Duration() time.Duration { return a.duration }
func (a rotateBy) Reverse() Action         { return rotateBy{angle: -a.angle, duration: a.duration} }

func (a rotateBy) Start(t *Transform) Step {
	from := t.Rotation
	return func(t *Transform, p float64) {
		t.Rotation = from + a.angle*p
	}
}

type accelerate struct {
	inner Action
	rate  float64
}

// Accelerate eases the inner action by raising its progress to rate.
func Accelerate(a Action, rate float64) Action {
	return accelerate{inner: a, rate: rate}
}

func (a accelerate) Duration() time.Duration { return a.inner.Duration() }

func (a accelerate) Reverse() Action {
	return accelerate{inner: a.inner.Reverse(), rate: 1 / a.rate}
}

func (a accelerate) Start(t *Transform) Step {
	step := a.inner.Start(t)
	return func(t *Transform, p float64) {
		step(t, math.Pow(p, a.rate))
	}
}

type sequence struct {
	actions []Action
}

// Sequence runs actions one after another. Each child captures the target's
// state when it begins, not when the sequence begins.
func Sequence(actions ...Action) Action {
	return sequence{actions: actions}
}

func (s sequence) Duration() time.Duration {
	var total time.Duration
	for _, a := range s.actions {
		total += a.Duration()
	}
	return total
}

func (s sequence) Reverse() Action {
	reversed := make([]Action, len(s.actions))
	for i, a := range s.actions {
		reversed[len(s.actions)-1-i] = a.Reverse()
	}
	return sequence{actions: reversed}
}

func (s sequence) Start(t *Transform) Step {
	if len(s.actions) == 0 {
		return func(*Transform, float64) {}
	}

	total := s.Duration()
	idx := -1
	var cur Step
	var offset time.Duration

	return func(t *Transform, p float64) {
		elapsed := time.Duration(p * float64(total))
		for {
			if idx >= 0 {
				d := s.actions[idx].Duration()
				if elapsed < offset+d || idx == len(s.actions)-1 {
					cur(t, fraction(elapsed-offset, d))
					return
				}
				cur(t, 1)
				offset += d
			}
			idx++
			cur = s.actions[idx].Start(t)
		}
	}
}

// Repeat runs a n times in a row.
func Repeat(a Action, n int) Action {
	copies := make([]Action, 0, n)
	for i := 0; i < n; i++ {
		copies = append(copies, a)
	}
	return Sequence(copies...)
}

// Reverse returns the inverse of a.
func Reverse(a Action) Action {
	return a.Reverse()
}

func fraction(elapsed, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	f := float64(elapsed) / float64(d)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
