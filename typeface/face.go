package typeface

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Metrics holds the face-wide vertical metrics at one pixel size, in
// integer pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the face.
	Ascent int

	// LineHeight is the recommended baseline-to-baseline distance.
	LineHeight int
}

// Glyph is one rasterized character: an 8-bit coverage bitmap plus the
// metrics needed to place it and advance the pen past it. The Mask
// buffer is freshly allocated per call and owned by the caller.
type Glyph struct {
	// Mask holds W*H coverage bytes in row-major order, 0 fully
	// transparent through 255 fully covered. Nil when the glyph has
	// no visible extent, such as a space.
	Mask []uint8

	// W, H are the bitmap dimensions in pixels.
	W, H int

	// BearingLeft is the horizontal offset from the pen position to
	// the left edge of the bitmap.
	BearingLeft int

	// BearingTop is the vertical offset from the baseline up to the
	// top edge of the bitmap.
	BearingTop int

	// Advance is how far the pen moves after this glyph.
	Advance int
}

// Face rasterizes characters of one font at one pixel size.
//
// Implementations are not required to be safe for concurrent use; the
// layout engine creates the faces it needs per render call.
type Face interface {
	// Metrics returns the vertical metrics for this size.
	Metrics() Metrics

	// Rasterize renders one character. The second result is false only
	// when the backend cannot produce a glyph at all; callers treat
	// that as a blank glyph rather than a failure. Characters missing
	// from the font render as the font's notdef glyph.
	Rasterize(r rune) (Glyph, bool)

	// Kern returns the horizontal kerning adjustment to apply between
	// two characters, in pixels. Zero when prev is 0 or the font has
	// no kerning for the pair.
	Kern(prev, cur rune) int
}

// sizedFace adapts an opentype face to the Face interface.
type sizedFace struct {
	ot font.Face
}

// Metrics implements Face.Metrics.
func (f *sizedFace) Metrics() Metrics {
	m := f.ot.Metrics()
	return Metrics{
		Ascent:     m.Ascent.Floor(),
		LineHeight: m.Height.Floor(),
	}
}

// Rasterize implements Face.Rasterize.
func (f *sizedFace) Rasterize(r rune) (Glyph, bool) {
	dr, mask, maskp, advance, ok := f.ot.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Glyph{}, false
	}

	g := Glyph{
		W:           dr.Dx(),
		H:           dr.Dy(),
		BearingLeft: dr.Min.X,
		BearingTop:  -dr.Min.Y,
		Advance:     advance.Floor(),
	}
	if g.W <= 0 || g.H <= 0 {
		// Whitespace carries an advance but no coverage.
		g.W, g.H = 0, 0
		return g, true
	}

	// The backend reuses its mask buffer between calls, so the
	// coverage rows are copied out.
	g.Mask = make([]uint8, g.W*g.H)
	if alpha, isAlpha := mask.(*image.Alpha); isAlpha {
		for row := 0; row < g.H; row++ {
			src := alpha.PixOffset(maskp.X, maskp.Y+row)
			copy(g.Mask[row*g.W:(row+1)*g.W], alpha.Pix[src:src+g.W])
		}
		return g, true
	}
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			_, _, _, a := mask.At(maskp.X+col, maskp.Y+row).RGBA()
			g.Mask[row*g.W+col] = uint8(a >> 8)
		}
	}
	return g, true
}

// Kern implements Face.Kern.
func (f *sizedFace) Kern(prev, cur rune) int {
	if prev == 0 {
		return 0
	}
	return f.ot.Kern(prev, cur).Floor()
}
