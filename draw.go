package inkpress

import (
	"fmt"
	"image"
	"math"

	"github.com/inkpress/inkpress/canvas"
	"github.com/inkpress/inkpress/markup"
	"github.com/inkpress/inkpress/typeface"
)

// FaceSource provides sized faces of one font. *typeface.Source
// implements it; layout tests substitute stub faces with fixed
// metrics.
type FaceSource interface {
	Face(pixels int) (typeface.Face, error)
}

// DrawSegments lays out styled segments onto img and composites every
// glyph in place.
//
// The pen starts at (startX, startY); startX is the line start for the
// whole call, so both explicit newlines and wrapping return to it.
// When maxWidth is positive, a character whose kerned advance would
// push the pen past startX+maxWidth wraps to a new line first, except
// when the pen is already at the line start: a glyph wider than the
// whole wrap width draws overlong rather than looping. Wrapping is
// character-granular; there is no word-boundary lookahead.
//
// Vertical metrics are resolved per segment, because a size tag can
// change them mid-text: glyphs sit on a baseline Ascent below the
// pen's y, and each new line advances by the face line height times
// the segment's spacing.
func DrawSegments(img *image.NRGBA, segments []markup.Segment, fonts FaceSource, startX, startY, maxWidth int) error {
	penX, penY := startX, startY
	var prev rune

	for _, seg := range segments {
		face, err := fonts.Face(seg.Style.Size)
		if err != nil {
			return fmt.Errorf("inkpress: face at size %d: %w", seg.Style.Size, err)
		}
		m := face.Metrics()
		ascent := m.Ascent
		lineGap := int(math.Round(float64(m.LineHeight) * seg.Style.Spacing))

		for _, r := range seg.Text {
			if r == '\n' {
				penX = startX
				penY += lineGap
				prev = 0
				continue
			}

			glyph, ok := face.Rasterize(r)
			if !ok {
				// Treated as a blank glyph; the pen stays put.
				Logger().Debug("rasterize failed", "rune", string(r), "size", seg.Style.Size)
				prev = 0
				continue
			}

			kern := face.Kern(prev, r)
			if maxWidth > 0 && penX+kern+glyph.Advance > startX+maxWidth && penX > startX {
				penX = startX
				penY += lineGap
				kern = 0
			}

			penX += kern
			canvas.Blend(img, glyph.Mask, glyph.W, glyph.H,
				penX+glyph.BearingLeft, penY+ascent-glyph.BearingTop, seg.Style.Color)
			penX += glyph.Advance
			prev = r
		}
	}
	return nil
}
