// Package tinymark is a processor for a small Markdown dialect.
//
// Text is translated in three steps: a Scanner turns it into a flat
// sequence of tokens, a Parser builds an ordered syntax tree from them, and
// an HTMLRenderer produces HTML from the tree.
//
// The simplest way to invoke tinymark is to call one of the Markdown*
// functions. It will take a text input and produce HTML.
//
// A slightly more sophisticated way is to call Parse, which returns the
// syntax tree for the input document together with the non-fatal errors
// found while building it. Parse never fails; the tree can be rendered
// with Render, printed with Dump or encoded as JSON.
//
// The supported constructs are headings, paragraphs of text, bold, italic
// and strikethrough spans, links, images, blockquotes, nested ordered and
// unordered lists, horizontal rules and tables with column alignment.
//
// If you're interested in calling tinymark from the command line or over
// HTTP, see cmd/tinymark.
package tinymark
