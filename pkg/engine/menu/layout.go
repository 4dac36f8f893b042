package menu

import "math"

// Point is a position in menu coordinates.
type Point struct {
	X, Y float64
}

// RowHeight returns the vertical spacing between entries for the given
// item font metrics.
func RowHeight(m FontMetrics) float64 {
	return math.Round(0.9 * (m.Ascent - m.Descent))
}

// EntryAnchors computes the anchor of each of n entries in a width x height
// viewport. Entries stack downward from index 0; titleHeight reserves room
// for the title.
func EntryAnchors(align Alignment, width, height, row, titleHeight float64, n int) ([]Point, error) {
	if err := align.Validate(); err != nil {
		return nil, err
	}

	var x float64
	switch align.Horizontal {
	case HAlignCenter:
		x = width / 2
	case HAlignRight:
		x = width - 2
	case HAlignLeft:
		x = 2
	}

	count := float64(n)
	anchors := make([]Point, n)
	for i := range anchors {
		fi := float64(i)
		var y float64
		switch align.Vertical {
		case VAlignCenter:
			y = height/2 + row*count/2 - fi*row - titleHeight*0.2
		case VAlignTop:
			y = height - fi*row - titleHeight
		case VAlignBottom:
			y = row*count - fi*row
		}
		anchors[i] = Point{X: x, Y: y}
	}
	return anchors, nil
}

// TitleAnchor returns where the title is centred for a title of the given
// content height.
func TitleAnchor(width, height, titleHeight float64) Point {
	return Point{X: width / 2, Y: height - titleHeight/2}
}
