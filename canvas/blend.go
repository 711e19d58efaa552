package canvas

import (
	"image"
	"image/color"
)

// Blend composites one glyph coverage bitmap onto dst at (x, y) using
// a source-over blend with the flat color c:
//
//	out = (1-a)*dst + a*c, per channel, a = coverage/255
//
// mask holds w*h coverage bytes in row-major order. The glyph
// rectangle is clipped against the image bounds on all four sides
// independently, so any placement is safe, including coordinates that
// are negative or beyond the image entirely; such calls are no-ops.
// The destination alpha channel is left untouched: templates are
// normalized to opaque before drawing starts.
func Blend(dst *image.NRGBA, mask []uint8, w, h, x, y int, c color.NRGBA) {
	if w <= 0 || h <= 0 || len(mask) < w*h {
		return
	}

	b := dst.Bounds()
	imgW, imgH := b.Dx(), b.Dy()

	// Clip amounts for each side, computed independently.
	clipLeft, clipTop := 0, 0
	if x < 0 {
		clipLeft = -x
	}
	if y < 0 {
		clipTop = -y
	}
	clipRight, clipBottom := 0, 0
	if over := x + w - imgW; over > 0 {
		clipRight = over
	}
	if over := y + h - imgH; over > 0 {
		clipBottom = over
	}

	cw := w - clipLeft - clipRight
	ch := h - clipTop - clipBottom
	if cw <= 0 || ch <= 0 {
		return
	}

	cr := float64(c.R)
	cg := float64(c.G)
	cb := float64(c.B)

	for row := 0; row < ch; row++ {
		mi := (clipTop+row)*w + clipLeft
		di := dst.PixOffset(b.Min.X+x+clipLeft, b.Min.Y+y+clipTop+row)
		for col := 0; col < cw; col++ {
			cov := mask[mi]
			mi++
			if cov == 0 {
				di += 4
				continue
			}
			a := float64(cov) / 255
			dst.Pix[di+0] = uint8((1-a)*float64(dst.Pix[di+0]) + a*cr)
			dst.Pix[di+1] = uint8((1-a)*float64(dst.Pix[di+1]) + a*cg)
			dst.Pix[di+2] = uint8((1-a)*float64(dst.Pix[di+2]) + a*cb)
			di += 4
		}
	}
}
