package typeface

import (
	"bytes"
	"fmt"
	"os"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file. One Source creates Face views
// at any number of pixel sizes without re-reading or re-parsing the
// font bytes, so a size change mid-render costs only a face handle.
//
// Source is safe for concurrent use: the parsed font is read-only and
// every mutable rasterizer state lives in the Face.
type Source struct {
	data   []byte
	parsed *opentype.Font
	family string
}

// NewSource parses TTF or OTF font data. The data slice is copied
// internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("typeface: parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	return &Source{
		data:   dataCopy,
		parsed: parsed,
		family: familyName(dataCopy, parsed),
	}, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeface: read font file: %w", err)
	}
	return NewSource(data)
}

// Family returns the font family name, or "" when the font carries no
// usable name table.
func (s *Source) Family() string { return s.family }

// Face returns a view of the font at the given pixel size.
//
// Faces are cheap: they reuse the Source's parsed font and only carry
// per-size rasterizer state. That state is not safe for concurrent
// use, so create a Face per rendering goroutine rather than sharing
// one. Panics if s is nil (for example when the error from
// NewSourceFromFile was ignored).
func (s *Source) Face(pixels int) (Face, error) {
	if s == nil {
		panic("typeface: Face called on a nil Source; check the error from NewSourceFromFile")
	}
	if pixels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, pixels)
	}

	// At 72 DPI one point is one pixel, so Size is the pixel size.
	ot, err := opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    float64(pixels),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("typeface: face at %dpx: %w", pixels, err)
	}
	return &sizedFace{ot: ot}, nil
}

// familyName extracts the family name, preferring the typesetting
// parser's description and falling back to the raw sfnt name table.
func familyName(data []byte, parsed *opentype.Font) string {
	if face, err := gtfont.ParseTTF(bytes.NewReader(data)); err == nil {
		if d := face.Describe(); d.Family != "" {
			return d.Family
		}
	}
	if name, err := parsed.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}
