// Package typeface loads fonts and rasterizes glyphs for the render
// pipeline.
//
// The package separates heavyweight font resources from lightweight
// sized views:
//
//   - Source: a parsed font file. Expensive to create, safe to share.
//   - Face: a Source fixed at one pixel size. Cheap to create, bound
//     to a single rendering goroutine.
//   - Cache: process-wide Source reuse keyed by a font identifier.
//
// A Face rasterizes one character at a time into an 8-bit coverage
// bitmap together with the metrics needed to place it on a baseline:
// advance width, bearings, and kerning against the previous character.
//
// # Example usage
//
//	// Load the font once, share it across the application.
//	source, err := typeface.NewSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Size the font per render call.
//	face, err := source.Face(40)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	glyph, ok := face.Rasterize('A')
package typeface
