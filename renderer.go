package inkpress

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/inkpress/inkpress/canvas"
	"github.com/inkpress/inkpress/markup"
	"github.com/inkpress/inkpress/typeface"
)

// Renderer generates images end to end: it resolves assets, keeps the
// font cache, and runs the parse, layout and encode pipeline.
//
// Construct one Renderer at startup and share it: the font cache it
// owns is safe for concurrent use, and each Generate call works on its
// own freshly decoded template buffer, so concurrent calls never touch
// the same pixels.
type Renderer struct {
	fonts  *typeface.Cache
	assets *Assets
}

// NewRenderer returns a Renderer resolving names through assets, with
// an empty font cache.
func NewRenderer(assets *Assets) *Renderer {
	return &Renderer{
		fonts:  typeface.NewCache(),
		assets: assets,
	}
}

// Assets returns the asset resolver the Renderer was built with.
func (r *Renderer) Assets() *Assets { return r.assets }

// Fonts returns the Renderer's font cache, shared across Generate
// calls for the Renderer's lifetime.
func (r *Renderer) Fonts() *typeface.Cache { return r.fonts }

// Generate renders text onto the template named by opts and encodes
// the result. It returns the encoded bytes and the final format name,
// which can differ from the requested one when the request falls
// outside the encodable set.
//
// Everything that can fail (option validation, asset resolution,
// template decoding, the font load) happens before the first glyph is
// painted. Past that point markup, geometry and rasterizer problems
// all degrade locally, so an error return means no partially painted
// image was produced.
func (r *Renderer) Generate(text string, opts Options) ([]byte, string, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, "", err
	}

	templatePath, err := r.assets.TemplatePath(opts.TemplateName)
	if err != nil {
		return nil, "", err
	}
	fontPath, err := r.assets.FontPath(opts.FontName)
	if err != nil {
		return nil, "", err
	}

	// Templates are decoded fresh per call; only fonts are cached.
	img, err := canvas.LoadTemplate(templatePath)
	if err != nil {
		return nil, "", err
	}
	source, err := r.fonts.Load(opts.FontName, fontPath)
	if err != nil {
		return nil, "", err
	}

	// Literal "\n" in configuration text means a line break, and NFC
	// folds decomposed input onto precomposed glyphs.
	text = norm.NFC.String(strings.ReplaceAll(text, `\n`, "\n"))

	segments := markup.Parse(text, opts.baseStyle())
	Logger().Debug("render",
		"template", opts.TemplateName,
		"font", opts.FontName,
		"segments", len(segments),
	)

	if err := DrawSegments(img, segments, source,
		opts.Position[0], opts.Position[1], opts.MaxWidth); err != nil {
		return nil, "", err
	}

	format := canvas.NormalizeFormat(opts.OutputFormat)
	var buf bytes.Buffer
	if err := canvas.Encode(&buf, img, format, opts.Quality); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), format, nil
}

// WriteTemp writes encoded image data to a fresh temporary file with
// an extension matching format and returns its path. Messaging hosts
// that attach images by file path use this; the caller removes the
// file when the hand-off is done.
func WriteTemp(data []byte, format string) (string, error) {
	f, err := os.CreateTemp("", "inkpress-*."+canvas.NormalizeFormat(format))
	if err != nil {
		return "", fmt.Errorf("inkpress: create temp image: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("inkpress: write temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("inkpress: close temp image: %w", err)
	}
	return f.Name(), nil
}
