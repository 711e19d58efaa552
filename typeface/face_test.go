package typeface

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// testFace returns a face for the embedded test font at the given
// pixel size.
func testFace(t *testing.T, pixels int) Face {
	t.Helper()

	source, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	face, err := source.Face(pixels)
	if err != nil {
		t.Fatalf("Face(%d) failed: %v", pixels, err)
	}
	return face
}

func TestFaceMetrics(t *testing.T) {
	face := testFace(t, 40)

	m := face.Metrics()
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %d, want > 0", m.Ascent)
	}
	if m.LineHeight <= m.Ascent {
		t.Errorf("LineHeight = %d, want > Ascent (%d)", m.LineHeight, m.Ascent)
	}
}

func TestFaceMetricsScaleWithSize(t *testing.T) {
	small := testFace(t, 12).Metrics()
	large := testFace(t, 48).Metrics()

	if large.Ascent <= small.Ascent {
		t.Errorf("Ascent at 48px = %d, want > Ascent at 12px (%d)", large.Ascent, small.Ascent)
	}
	if large.LineHeight <= small.LineHeight {
		t.Errorf("LineHeight at 48px = %d, want > LineHeight at 12px (%d)", large.LineHeight, small.LineHeight)
	}
}

func TestRasterizeLetter(t *testing.T) {
	face := testFace(t, 40)

	g, ok := face.Rasterize('A')
	if !ok {
		t.Fatal("Rasterize('A') reported failure")
	}
	if g.W <= 0 || g.H <= 0 {
		t.Fatalf("bitmap %dx%d, want positive extent", g.W, g.H)
	}
	if len(g.Mask) != g.W*g.H {
		t.Errorf("len(Mask) = %d, want W*H = %d", len(g.Mask), g.W*g.H)
	}
	if g.Advance <= 0 {
		t.Errorf("Advance = %d, want > 0", g.Advance)
	}
	if g.BearingTop <= 0 {
		t.Errorf("BearingTop = %d, want > 0 for a letter above the baseline", g.BearingTop)
	}

	covered := false
	for _, c := range g.Mask {
		if c > 0 {
			covered = true
			break
		}
	}
	if !covered {
		t.Error("coverage bitmap for 'A' is entirely empty")
	}
}

func TestRasterizeSpace(t *testing.T) {
	face := testFace(t, 40)

	g, ok := face.Rasterize(' ')
	if !ok {
		t.Fatal("Rasterize(' ') reported failure")
	}
	if g.W != 0 || g.H != 0 {
		t.Errorf("space bitmap %dx%d, want 0x0", g.W, g.H)
	}
	if g.Mask != nil {
		t.Errorf("space Mask has %d bytes, want nil", len(g.Mask))
	}
	if g.Advance <= 0 {
		t.Errorf("space Advance = %d, want > 0", g.Advance)
	}
}

// A character the font has no glyph for renders as the notdef glyph
// rather than failing.
func TestRasterizeMissingGlyph(t *testing.T) {
	face := testFace(t, 40)

	g, ok := face.Rasterize('')
	if !ok {
		t.Fatal("Rasterize of an unmapped character reported failure, want notdef glyph")
	}
	if g.Advance < 0 {
		t.Errorf("notdef Advance = %d, want >= 0", g.Advance)
	}
}

// Each Rasterize call must return its own buffer: the backend reuses
// its internal mask, and segments hold glyphs across later calls.
func TestRasterizeFreshMask(t *testing.T) {
	face := testFace(t, 40)

	a, ok := face.Rasterize('A')
	if !ok || len(a.Mask) == 0 {
		t.Fatal("Rasterize('A') produced no bitmap")
	}
	snapshot := make([]uint8, len(a.Mask))
	copy(snapshot, a.Mask)

	if _, ok := face.Rasterize('W'); !ok {
		t.Fatal("Rasterize('W') reported failure")
	}

	for i := range snapshot {
		if a.Mask[i] != snapshot[i] {
			t.Fatal("mask of 'A' changed after rasterizing 'W'; buffer is shared")
		}
	}
}

func TestKern(t *testing.T) {
	face := testFace(t, 40)

	if k := face.Kern(0, 'A'); k != 0 {
		t.Errorf("Kern(0, 'A') = %d, want 0", k)
	}

	// Kerning values are small adjustments; anything approaching the
	// pixel size indicates a unit conversion bug.
	k := face.Kern('A', 'V')
	if k < -40 || k > 40 {
		t.Errorf("Kern('A', 'V') = %d, want a small adjustment", k)
	}
}
