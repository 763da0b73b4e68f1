package tinymark

import "fmt"

// Node is a single element of the abstract syntax tree. The variants mirror
// the Token variants; only ListNode has children. Nodes are not modified
// once the parser returns them.
type Node interface {
	Kind() Kind
	Base() Common
	isNode()
}

type HeadingNode struct {
	Common
	HeadingData
}

type TextNode struct{ Common }

type BoldNode struct{ Common }

type ItalicNode struct{ Common }

type StrikethroughNode struct{ Common }

// ListNode is one list item. Items holds the items of the list nested
// one level deeper, in source order.
type ListNode struct {
	Common
	ListData
	Items []*ListNode
}

type LinkNode struct {
	Common
	LinkData
}

// ImageNode carries the optional image title in Content.
type ImageNode struct {
	Common
	ImageData
}

type BlockquoteNode struct{ Common }

type HorizontalRuleNode struct{ Common }

type TableNode struct {
	Common
	TableData
}

func (*HeadingNode) Kind() Kind        { return KindHeading }
func (*TextNode) Kind() Kind           { return KindText }
func (*BoldNode) Kind() Kind           { return KindBold }
func (*ItalicNode) Kind() Kind         { return KindItalic }
func (*StrikethroughNode) Kind() Kind  { return KindStrikethrough }
func (*ListNode) Kind() Kind           { return KindList }
func (*LinkNode) Kind() Kind           { return KindLink }
func (*ImageNode) Kind() Kind          { return KindImage }
func (*BlockquoteNode) Kind() Kind     { return KindBlockquote }
func (*HorizontalRuleNode) Kind() Kind { return KindHorizontalRule }
func (*TableNode) Kind() Kind          { return KindTable }

func (*HeadingNode) isNode()        {}
func (*TextNode) isNode()           {}
func (*BoldNode) isNode()           {}
func (*ItalicNode) isNode()         {}
func (*StrikethroughNode) isNode()  {}
func (*ListNode) isNode()           {}
func (*LinkNode) isNode()           {}
func (*ImageNode) isNode()          {}
func (*BlockquoteNode) isNode()     {}
func (*HorizontalRuleNode) isNode() {}
func (*TableNode) isNode()          {}

// isInline reports whether n belongs to an inline run, i.e. is rendered
// inside a shared paragraph.
func isInline(n Node) bool {
	switch n.(type) {
	case *TextNode, *BoldNode, *ItalicNode, *StrikethroughNode, *LinkNode:
		return true
	}
	return false
}

// ParseError is a non-fatal problem found while building the tree.
type ParseError struct {
	Message  string
	Position Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// ParseResult is what Parse returns: every node that could be built, in
// source order, and the errors collected on the way.
type ParseResult struct {
	AST    []Node
	Errors []*ParseError
}
