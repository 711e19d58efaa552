// Package markup parses the inline tag language used to style rendered
// text.
//
// The language supports three attributes, each written as an opening tag
// with a value and closed by a matching-kind closing tag:
//
//	[color=#RRGGBB]...[/color]
//	[size=32]...[/size]
//	[spacing=1.5]...[/spacing]
//
// Tags nest, and every closing tag restores the style that was active
// before the most recent opening tag. Parsing never fails: a tag that
// does not parse cleanly is kept as literal text in the output, styled
// with whatever style is active at that point.
package markup
