// Package inkpress renders marked-up text onto template images.
//
// # Overview
//
// inkpress takes a plain string with lightweight inline markup and
// paints it onto a bitmap loaded from a template file:
//
//	[color=#ff0000]red[/color] and [size=60]big[/size] text
//
// The pipeline parses the markup into styled segments (markup), lays
// the segments out with real font metrics including kerning and line
// wrapping, rasterizes each character through a cached font face
// (typeface), and alpha-composites the glyph coverage onto the image
// (canvas).
//
// # Quick Start
//
//	assets := inkpress.NewAssets("./assets")
//	r := inkpress.NewRenderer(assets)
//
//	data, format, err := r.Generate("[size=60]Hello[/size]", inkpress.Options{
//	    TemplateName: "card.png",
//	    FontName:     "Roboto-Regular.ttf",
//	    Color:        "#222222",
//	    FontSize:     40,
//	    Position:     [2]int{60, 40},
//	    MaxWidth:     600,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("out."+format, data, 0o644)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Options, Assets, DrawSegments
//   - markup: tag parsing and the style stack
//   - typeface: font loading, the face cache, glyph rasterization
//   - canvas: template decode/normalize, compositing, encoding
//   - command: static and time-windowed command tables for chat hosts
//   - preview: HTTP preview server for the editing workflow
//
// # Coordinate System
//
// Uses standard raster coordinates: origin (0,0) at top-left, X
// increases right, Y increases down. The configured position is the
// top-left of the first line's box; glyphs sit on a baseline Ascent
// pixels below it.
package inkpress

// Version is the current version of the library.
const Version = "1.0.0"
