package menu

import "image/color"

// Style describes how a piece of menu text is drawn.
type Style struct {
	FontName string
	FontSize float64
	Color    color.RGBA
	Bold     bool
	Italic   bool
	HAlign   HAlign
	VAlign   VAlign
	DPI      int
}

// Styles groups the three text styles a menu uses.
type Styles struct {
	Title        Style
	Item         Style
	ItemSelected Style
}

// DefaultStyles returns the stock look: a large light title, grey entries and
// white selected entries.
func DefaultStyles() Styles {
	return Styles{
		Title: Style{
			FontName: "Arial",
			FontSize: 56,
			Color:    color.RGBA{R: 192, G: 192, B: 192, A: 255},
			DPI:      96,
		},
		Item: Style{
			FontName: "Arial",
			FontSize: 32,
			Color:    color.RGBA{R: 192, G: 192, B: 192, A: 255},
			DPI:      96,
		},
		ItemSelected: Style{
			FontName: "Arial",
			FontSize: 42,
			Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
			DPI:      96,
		},
	}
}
