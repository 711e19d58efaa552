package markup

import "image/color"

// Style is the resolved set of attributes a run of text is drawn with.
// It is a plain value: deriving a new style copies it, so a Style held
// by one Segment is never mutated by later parsing.
type Style struct {
	// Color is the fill color applied to glyph coverage.
	Color color.NRGBA

	// Size is the pixel size glyphs are rasterized at. Always positive.
	Size int

	// Spacing is the line height multiplier used for newlines and
	// wrapping. Always a positive, finite value.
	Spacing float64
}

// Segment is a run of text that renders with a single uniform style.
type Segment struct {
	Text  string
	Style Style
}
