// Public interface

package tinymark

// Version string of the package. Appears in the meta GENERATOR tag of
// complete pages.
const Version = "1.0"

// Markdown is the main rendering function.
// It parses input with the common extensions and renders the tree with r.
// Problems found while parsing are dropped; use Parse to see them.
//
// To use a different renderer or extensions, call Parse and Render
// separately.
func Markdown(input string, r *HTMLRenderer) string {
	result := Parse(input)
	return r.Render(result.AST)
}

// MarkdownBasic is a convenience function for simple rendering.
// It processes markdown input with no extensions enabled, so tables,
// strikethrough, images and horizontal rules come out as plain text.
func MarkdownBasic(input string) string {
	opts := Options{Extensions: NoExtensions}
	result := ParseOptions(input, opts)
	return NewHTMLRenderer(HTMLFlagsNone, HTMLRendererParameters{}).Render(result.AST)
}

// MarkdownCommon is a convenience function for simple rendering.
// It processes markdown input with common extensions enabled, including:
//
// * Tables
//
// * Strikethrough support
//
// * Images
//
// * Horizontal rules
//
// and renders with header IDs and safe links.
func MarkdownCommon(input string) string {
	return Markdown(input, NewHTMLRenderer(CommonHTMLFlags, HTMLRendererParameters{}))
}
