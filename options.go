package inkpress

import (
	"errors"
	"fmt"
	"math"

	"github.com/inkpress/inkpress/markup"
)

// Default option values applied by Options.withDefaults.
const (
	DefaultColor       = "#000000"
	DefaultFontSize    = 40
	DefaultLineSpacing = 1.2
)

// ErrInvalidOptions wraps every option validation failure.
var ErrInvalidOptions = errors.New("inkpress: invalid options")

// Options configures one render. The zero value is not usable on its
// own: TemplateName and FontName are required. Everything else has a
// default. The JSON field names match the command configuration
// format, so an image_options object unmarshals directly into Options.
type Options struct {
	// TemplateName names the background image, resolved against the
	// template directory of the Assets in use.
	TemplateName string `json:"template_name"`

	// FontName names the font file, resolved against the font
	// directory of the Assets in use. It doubles as the cache key.
	FontName string `json:"font_name"`

	// Color is the default text color as a hex string, for example
	// "#1a2b3c". Markup color tags override it per segment.
	Color string `json:"color,omitempty"`

	// FontSize is the default pixel size. Markup size tags override
	// it per segment.
	FontSize int `json:"font_size,omitempty"`

	// LineSpacing multiplies the font's natural line height when
	// advancing to a new line. Markup spacing tags override it.
	LineSpacing float64 `json:"line_spacing,omitempty"`

	// MaxWidth is the wrap width in pixels, measured from Position.
	// Zero disables wrapping.
	MaxWidth int `json:"max_width,omitempty"`

	// Position is the {x, y} pen start in image coordinates.
	Position [2]int `json:"position"`

	// OutputFormat selects the encoded container. Unknown values,
	// including webp, fall back to png.
	OutputFormat string `json:"output_format,omitempty"`

	// Quality is the JPEG quality, 1 through 100. Out-of-range
	// values fall back to the encoder default.
	Quality int `json:"quality,omitempty"`
}

// withDefaults returns a copy of o with zero-valued optional fields
// replaced by their defaults.
func (o Options) withDefaults() Options {
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.LineSpacing == 0 {
		o.LineSpacing = DefaultLineSpacing
	}
	return o
}

// validate reports the first problem with o, assuming defaults have
// been applied. Template and font existence is checked later by asset
// resolution, not here.
func (o Options) validate() error {
	switch {
	case o.TemplateName == "":
		return fmt.Errorf("%w: template_name is required", ErrInvalidOptions)
	case o.FontName == "":
		return fmt.Errorf("%w: font_name is required", ErrInvalidOptions)
	case o.FontSize <= 0:
		return fmt.Errorf("%w: font_size %d must be positive", ErrInvalidOptions, o.FontSize)
	case o.LineSpacing <= 0 || math.IsInf(o.LineSpacing, 0) || math.IsNaN(o.LineSpacing):
		return fmt.Errorf("%w: line_spacing %v must be a positive finite number", ErrInvalidOptions, o.LineSpacing)
	case o.MaxWidth < 0:
		return fmt.Errorf("%w: max_width %d must not be negative", ErrInvalidOptions, o.MaxWidth)
	}
	if _, err := markup.ParseHexColor(o.Color); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// baseStyle resolves the option fields that seed the markup style
// stack. Call only after validate.
func (o Options) baseStyle() markup.Style {
	c, _ := markup.ParseHexColor(o.Color)
	return markup.Style{
		Color:   c,
		Size:    o.FontSize,
		Spacing: o.LineSpacing,
	}
}
