package anim

import "time"

// Stock menu entry effects.

// Shake wobbles the target slightly and settles back on its starting angle.
func Shake() Action {
	const angle = 5
	const duration = 50 * time.Millisecond

	rot := Accelerate(RotateBy(angle, duration), 2)
	rot2 := Accelerate(RotateBy(-angle*2, duration), 2)
	return Sequence(
		rot,
		Repeat(Sequence(rot2, Reverse(rot2)), 2),
		Reverse(rot),
	)
}

// ShakeBack snaps rotation back to zero.
func ShakeBack() Action {
	return RotateTo(0, 100*time.Millisecond)
}

// ZoomIn grows the target to 1.5x.
func ZoomIn() Action {
	return ScaleTo(1.5, 200*time.Millisecond)
}

// ZoomOut returns the target to its natural size.
func ZoomOut() Action {
	return ScaleTo(1.0, 200*time.Millisecond)
}
