package typeface

import "errors"

// Sentinel errors for the typeface package.
var (
	// ErrEmptyFont is returned when font data is empty.
	ErrEmptyFont = errors.New("typeface: empty font data")

	// ErrInvalidSize is returned when a face is requested at a
	// non-positive pixel size.
	ErrInvalidSize = errors.New("typeface: pixel size must be positive")
)
