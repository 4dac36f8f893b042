package ebiten

import "image/color"

// Color palette
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorSubtle     = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
)

// Background glyphs, all covered by the Go fonts.
var backgroundIcons = []string{"■", "□", "▪", "▫", "▲", "▼", "◊", "○", "●", "░"}

// Dark contrasting colors for the background animation
var backgroundColors = []color.Color{
	color.RGBA{40, 40, 60, 255}, // Dark blue-gray
	color.RGBA{60, 40, 40, 255}, // Dark red-gray
	color.RGBA{40, 60, 40, 255}, // Dark green-gray
	color.RGBA{50, 50, 70, 255}, // Darker blue-gray
	color.RGBA{45, 45, 65, 255}, // Medium dark gray-blue
	color.RGBA{55, 45, 55, 255}, // Dark purple-gray
	color.RGBA{35, 50, 55, 255}, // Dark teal-gray
	color.RGBA{50, 40, 50, 255}, // Dark magenta-gray
}

const (
	backgroundFontSize = 24.0
	versionFontSize    = 12.0
)

// Key repeat, in ticks
const (
	keyRepeatInitialDelay = 30
	keyRepeatInterval     = 4
)

const sampleRate = 44100
