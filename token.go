//
// Tinymark Markdown Processor
// Available at http://github.com/tinymark/tinymark
//
// Copyright © The Tinymark Authors.
// Distributed under the Simplified BSD License.
// See LICENSE for details.
//

//
//
// Tokens produced by the scanner
//
//

package tinymark

import "fmt"

// Position locates a token or node in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column, counted in runes
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Kind identifies the variant of a Token or Node.
type Kind int

const (
	KindHeading Kind = iota
	KindText
	KindBold
	KindItalic
	KindStrikethrough
	KindList
	KindLink
	KindImage
	KindBlockquote
	KindHorizontalRule
	KindTable
)

var kindNames = []string{
	KindHeading:        "Heading",
	KindText:           "Text",
	KindBold:           "Bold",
	KindItalic:         "Italic",
	KindStrikethrough:  "Strikethrough",
	KindList:           "List",
	KindLink:           "Link",
	KindImage:          "Image",
	KindBlockquote:     "Blockquote",
	KindHorizontalRule: "HorizontalRule",
	KindTable:          "Table",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Common holds the fields shared by every token and node.
type Common struct {
	Content  string   // Trimmed text content
	Position Position // Where the construct starts
	Indent   int      // Width of the leading whitespace of the line
}

// Base returns the shared fields.
func (c Common) Base() Common {
	return c
}

type HeadingData struct {
	Level int // 1 to 6
}

type ListData struct {
	Ordered     bool
	StartNumber int // Number written before the '.'; only set for ordered lists
}

type LinkData struct {
	URL string // Raw, untrimmed destination
}

type ImageData struct {
	URL string
	Alt string
}

// Alignment is the alignment of one table column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

type TableData struct {
	Headers    []string
	Rows       [][]string
	Alignments []Alignment
}

// Token is a single lexical unit. The set of implementations is closed:
// HeadingToken, TextToken, BoldToken, ItalicToken, StrikethroughToken,
// ListToken, LinkToken, ImageToken, BlockquoteToken, HorizontalRuleToken
// and TableToken.
type Token interface {
	Kind() Kind
	Base() Common
	isToken()
}

type HeadingToken struct {
	Common
	HeadingData
}

type TextToken struct{ Common }

type BoldToken struct{ Common }

type ItalicToken struct{ Common }

type StrikethroughToken struct{ Common }

type ListToken struct {
	Common
	ListData
}

type LinkToken struct {
	Common
	LinkData
}

type ImageToken struct {
	Common
	ImageData
}

type BlockquoteToken struct{ Common }

type HorizontalRuleToken struct{ Common }

type TableToken struct {
	Common
	TableData
}

func (*HeadingToken) Kind() Kind        { return KindHeading }
func (*TextToken) Kind() Kind           { return KindText }
func (*BoldToken) Kind() Kind           { return KindBold }
func (*ItalicToken) Kind() Kind         { return KindItalic }
func (*StrikethroughToken) Kind() Kind  { return KindStrikethrough }
func (*ListToken) Kind() Kind           { return KindList }
func (*LinkToken) Kind() Kind           { return KindLink }
func (*ImageToken) Kind() Kind          { return KindImage }
func (*BlockquoteToken) Kind() Kind     { return KindBlockquote }
func (*HorizontalRuleToken) Kind() Kind { return KindHorizontalRule }
func (*TableToken) Kind() Kind          { return KindTable }

func (*HeadingToken) isToken()        {}
func (*TextToken) isToken()           {}
func (*BoldToken) isToken()           {}
func (*ItalicToken) isToken()         {}
func (*StrikethroughToken) isToken()  {}
func (*ListToken) isToken()           {}
func (*LinkToken) isToken()           {}
func (*ImageToken) isToken()          {}
func (*BlockquoteToken) isToken()     {}
func (*HorizontalRuleToken) isToken() {}
func (*TableToken) isToken()          {}
