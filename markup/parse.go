package markup

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// tagPattern recognizes opening and closing tags for the three known
// attribute kinds. Anything the pattern does not match, bracketed or
// not, is literal text.
var tagPattern = regexp.MustCompile(`\[/?(?:color|size|spacing)[^\]]*\]`)

// Parse splits text into styled segments. base is the style in effect
// outside any tag; it stays at the bottom of the style stack and can
// never be popped, so unbalanced closing tags are harmless.
//
// Parse does not fail. Opening tags that do not parse cleanly are
// emitted as literal segments carrying the style active where they
// appear. Empty literal runs between adjacent tags are dropped, and
// runs with identical styles are kept as separate segments in source
// order.
func Parse(text string, base Style) []Segment {
	var segments []Segment
	stack := []Style{base}
	last := 0

	for _, loc := range tagPattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{
				Text:  text[last:loc[0]],
				Style: stack[len(stack)-1],
			})
		}
		tag := text[loc[0]:loc[1]]
		body := tag[1 : len(tag)-1]

		if strings.HasPrefix(body, "/") {
			// Closing tags pop one level regardless of which
			// attribute they name. Nesting is positional.
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		} else if next, ok := applyAttr(stack[len(stack)-1], body); ok {
			stack = append(stack, next)
		} else {
			segments = append(segments, Segment{
				Text:  tag,
				Style: stack[len(stack)-1],
			})
		}
		last = loc[1]
	}

	if last < len(text) {
		segments = append(segments, Segment{
			Text:  text[last:],
			Style: stack[len(stack)-1],
		})
	}
	return segments
}

// applyAttr derives a new style from the current one by applying a tag
// body of the form "name=value". The second result reports whether the
// tag was well formed; a false return means the caller should keep the
// tag text as literal output.
//
// A name the tokenizer matched but the switch does not recognize (for
// example "sizes") derives an unchanged copy. The tag still pushes a
// stack level, so its closing tag stays balanced.
func applyAttr(current Style, body string) (Style, bool) {
	name, value, found := strings.Cut(body, "=")
	if !found {
		return Style{}, false
	}

	next := current
	switch name {
	case "color":
		c, err := ParseHexColor(value)
		if err != nil {
			return Style{}, false
		}
		next.Color = c
	case "size":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return Style{}, false
		}
		next.Size = n
	case "spacing":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return Style{}, false
		}
		next.Spacing = f
	}
	return next, true
}
