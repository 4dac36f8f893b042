package ebiten

import (
	"image/color"
	"math"
	"time"
)

// pulsingColor scales base between 50% and 100% brightness on a 2 second sine.
func pulsingColor(base color.RGBA, now time.Time) color.RGBA {
	const pulsePeriod = 2000.0

	phase := float64(now.UnixMilli()%int64(pulsePeriod)) / pulsePeriod
	pulse := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0

	brightness := 0.5 + 0.5*pulse
	return color.RGBA{
		R: uint8(float64(base.R) * brightness),
		G: uint8(float64(base.G) * brightness),
		B: uint8(float64(base.B) * brightness),
		A: base.A,
	}
}
