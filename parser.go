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
// Building the syntax tree from tokens
//
//

package tinymark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Parser builds the syntax tree from a token sequence. Most tokens become
// one node each; consecutive blockquote lines are merged and list items
// are nested by indentation. A Parser is not safe for concurrent use.
type Parser struct {
	log     *log.Logger
	tokens  []Token
	current int
	errors  []*ParseError

	// open list levels, outermost first; indentation grows towards the top
	lists []*ListNode
}

// Parse scans and parses input with DefaultOptions. It never fails: any
// problem is reported in the Errors of the result.
func Parse(input string) ParseResult {
	return ParseOptions(input, DefaultOptions)
}

// ParseOptions is like Parse with explicit options.
func ParseOptions(input string, opts Options) ParseResult {
	return NewParser(opts).Parse(NewScanner(input, opts).Tokenize())
}

// ParseTokens builds the syntax tree for an already scanned token sequence.
func ParseTokens(tokens []Token) ParseResult {
	return NewParser(DefaultOptions).Parse(tokens)
}

func NewParser(opts Options) *Parser {
	return &Parser{log: opts.Logger}
}

// Parse consumes tokens once, left to right. A token that cannot be turned
// into a node is recorded as a ParseError and skipped.
func (p *Parser) Parse(tokens []Token) ParseResult {
	p.tokens, p.current, p.errors, p.lists = tokens, 0, nil, nil

	var ast []Node
	for !p.atEnd() {
		tok, err := p.peek()
		if err != nil {
			p.fail(err)
			break
		}

		node, err := p.parseToken(tok)
		if err != nil {
			p.fail(err)
			continue
		}
		if node != nil {
			p.trace("node", "kind", node.Kind(), "at", node.Base().Position)
			ast = append(ast, node)
		}
	}

	return ParseResult{AST: ast, Errors: p.errors}
}

// parseToken consumes at least one token. It returns a nil node when the
// token was attached below an existing node.
func (p *Parser) parseToken(tok Token) (Node, error) {
	switch t := tok.(type) {
	case *ListToken:
		return p.parseListItem(t), nil
	case *BlockquoteToken:
		p.closeLists()
		return p.parseBlockquote(t), nil
	}

	p.closeLists()
	p.advance()
	return p.convert(tok)
}

// convert copies a token into the node of the same kind.
func (p *Parser) convert(tok Token) (Node, error) {
	switch t := tok.(type) {
	case *HeadingToken:
		return &HeadingNode{Common: t.Common, HeadingData: t.HeadingData}, nil
	case *TextToken:
		return &TextNode{Common: t.Common}, nil
	case *BoldToken:
		return &BoldNode{Common: t.Common}, nil
	case *ItalicToken:
		return &ItalicNode{Common: t.Common}, nil
	case *StrikethroughToken:
		return &StrikethroughNode{Common: t.Common}, nil
	case *ListToken:
		return &ListNode{Common: t.Common, ListData: t.ListData}, nil
	case *LinkToken:
		return &LinkNode{Common: t.Common, LinkData: t.LinkData}, nil
	case *ImageToken:
		return &ImageNode{Common: t.Common, ImageData: t.ImageData}, nil
	case *BlockquoteToken:
		return &BlockquoteNode{Common: t.Common}, nil
	case *HorizontalRuleToken:
		return &HorizontalRuleNode{Common: t.Common}, nil
	case *TableToken:
		return &TableNode{Common: t.Common, TableData: t.TableData}, nil
	}

	pos := p.lastPosition()
	if tok != nil {
		pos = tok.Base().Position
	}
	return nil, &ParseError{
		Message:  fmt.Sprintf("unknown token kind %T", tok),
		Position: pos,
	}
}

// parseListItem places a list item by its indentation: below the nearest
// open item that is indented less, or at the top level.
func (p *Parser) parseListItem(tok *ListToken) Node {
	p.advance()
	item := &ListNode{Common: tok.Common, ListData: tok.ListData}

	for len(p.lists) > 0 && p.lists[len(p.lists)-1].Indent >= item.Indent {
		p.lists = p.lists[:len(p.lists)-1]
	}

	if len(p.lists) == 0 {
		p.lists = append(p.lists, item)
		return item
	}

	parent := p.lists[len(p.lists)-1]
	parent.Items = append(parent.Items, item)
	p.lists = append(p.lists, item)
	p.trace("nested list item", "parent", parent.Position, "depth", len(p.lists)-1)
	return nil
}

func (p *Parser) closeLists() {
	p.lists = p.lists[:0]
}

// parseBlockquote merges a run of blockquote lines into one node.
func (p *Parser) parseBlockquote(first *BlockquoteToken) Node {
	p.advance()
	lines := []string{first.Content}
	for !p.atEnd() {
		next, ok := p.tokens[p.current].(*BlockquoteToken)
		if !ok {
			break
		}
		lines = append(lines, next.Content)
		p.advance()
	}

	node := &BlockquoteNode{Common: first.Common}
	node.Content = strings.Join(lines, "\n")
	return node
}

func (p *Parser) peek() (Token, error) {
	if p.atEnd() {
		if len(p.tokens) == 0 {
			return nil, &ParseError{Message: "empty token stream", Position: Position{Line: 1, Column: 1}}
		}
		return nil, &ParseError{Message: "unexpected end of input", Position: p.lastPosition()}
	}
	return p.tokens[p.current], nil
}

func (p *Parser) advance() {
	if !p.atEnd() {
		p.current++
	}
}

func (p *Parser) atEnd() bool {
	return p.current >= len(p.tokens)
}

// lastPosition is the position of the closest token before the cursor, or
// the start of the document.
func (p *Parser) lastPosition() Position {
	for i := min(p.current, len(p.tokens)) - 1; i >= 0; i-- {
		if p.tokens[i] != nil {
			return p.tokens[i].Base().Position
		}
	}
	return Position{Line: 1, Column: 1}
}

func (p *Parser) fail(err error) {
	var perr *ParseError
	if !errors.As(err, &perr) {
		perr = &ParseError{Message: err.Error(), Position: p.lastPosition()}
	}
	p.trace("parse error", "err", perr)
	p.errors = append(p.errors, perr)
}
