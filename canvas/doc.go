// Package canvas owns the pixel side of rendering: decoding template
// images into a normalized working buffer, compositing glyph coverage
// bitmaps onto it, and encoding the finished image.
//
// The working format is *image.NRGBA with bounds anchored at (0, 0)
// and every pixel fully opaque. Normalize converts arbitrary decoded
// images into that shape; Blend and Encode assume it.
package canvas
