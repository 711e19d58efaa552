package canvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// Templates may be stored as webp; decode support only.
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned when a template decodes to zero pixels.
var ErrEmptyImage = errors.New("canvas: template has no pixels")

// LoadTemplate decodes the image file at path and normalizes it into
// the working format. The returned buffer is freshly allocated per
// call; callers own it exclusively and may paint into it.
func LoadTemplate(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: load template %q: %w", path, err)
	}
	return Normalize(img)
}

// Normalize converts any decoded image into the working format: an
// *image.NRGBA with bounds anchored at (0, 0) and every pixel fully
// opaque. Grayscale and paletted inputs expand to color; inputs with
// an alpha channel have it flattened: the stored color values are
// kept as-is rather than composited against a backdrop.
func Normalize(img image.Image) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst, nil
}
