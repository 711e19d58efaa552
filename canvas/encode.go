package canvas

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
)

// DefaultQuality is the JPEG quality used when the caller passes a
// quality outside [1, 100].
const DefaultQuality = 95

// NormalizeFormat maps a requested output format onto the closed set
// of encodable formats. Matching is case-insensitive and tolerates a
// leading dot. Anything outside the set, including webp, for which
// only decoding is available, normalizes to "png".
func NormalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png":
		return "png"
	case "jpg":
		return "jpg"
	case "jpeg":
		return "jpeg"
	case "bmp":
		return "bmp"
	}
	return "png"
}

// Encode writes img to w in the given format. The format is passed
// through NormalizeFormat first, so any string is acceptable. quality
// applies to JPEG only; values outside [1, 100] fall back to
// DefaultQuality.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	var err error
	switch NormalizeFormat(format) {
	case "jpg", "jpeg":
		if quality < 1 || quality > 100 {
			quality = DefaultQuality
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case "bmp":
		err = bmp.Encode(w, img)
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("canvas: encode %s: %w", NormalizeFormat(format), err)
	}
	return nil
}
