//
// Tinymark Markdown Processor
// Available at http://github.com/tinymark/tinymark
//

//
//
// Markdown scanning
//
//

package tinymark

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Extensions select the optional constructs the scanner recognizes.
// OR these values together to select multiple extensions.
type Extensions int

const (
	NoExtensions    Extensions = 0
	Tables          Extensions = 1 << iota // | tables, with alignment and body rows
	Strikethrough                          // ~~deleted~~
	Images                                 // ![alt](url "title")
	HorizontalRules                        // ---, *** and ___ lines

	CommonExtensions = Tables | Strikethrough | Images | HorizontalRules
)

// The size of a tab stop, used when measuring indentation.
const TabSize = 4

// Options configure a Scanner or a Parser.
type Options struct {
	Extensions Extensions
	// Logger receives debug traces of every token and node; nil is silent.
	Logger *log.Logger
}

// DefaultOptions is what Tokenize and Parse use.
var DefaultOptions = Options{Extensions: CommonExtensions}

// scanFunc tries to scan one construct at the cursor. It returns nil if the
// construct does not match, otherwise the token and the offset just past it.
// It never moves the cursor itself.
type scanFunc func(s *Scanner) (Token, int)

// Scanner turns markdown text into a flat token sequence. A Scanner is
// used for a single input and is not safe for concurrent use.
type Scanner struct {
	input     string
	pos       int
	line      int
	lineStart int
	triggers  [256][]scanFunc
	log       *log.Logger
	tokens    []Token

	// per-line caches keeping long lines linear
	eolFrom, eol int // no newline in input[eolFrom:eol]
	blankFor     int // lineStart the blankEnd below belongs to
	blankEnd     int // first non-blank offset of that line
	colAt        int // offset whose column is colRunes+1
	colRunes     int // runes between lineStart and colAt
	bracketMiss  int // a '[' before this offset opens no link
}

// Tokenize scans input with DefaultOptions.
func Tokenize(input string) []Token {
	return NewScanner(input, DefaultOptions).Tokenize()
}

// NewScanner prepares a scanner for input. Constructs whose extension is
// not enabled in opts are scanned as ordinary text.
func NewScanner(input string, opts Options) *Scanner {
	s := &Scanner{
		input: input,
		line:  1,
		log:   opts.Logger,
	}

	// register the scanners; the order per character is the order in
	// which they are tried
	s.triggers['#'] = []scanFunc{scanHeading}
	if opts.Extensions&HorizontalRules != 0 {
		s.triggers['*'] = append(s.triggers['*'], scanHorizontalRule)
		s.triggers['-'] = append(s.triggers['-'], scanHorizontalRule)
		s.triggers['_'] = append(s.triggers['_'], scanHorizontalRule)
	}
	s.triggers['*'] = append(s.triggers['*'], scanList, scanBold, scanItalic)
	s.triggers['-'] = append(s.triggers['-'], scanList)
	s.triggers['+'] = append(s.triggers['+'], scanList)
	for c := '0'; c <= '9'; c++ {
		s.triggers[c] = []scanFunc{scanList}
	}
	if opts.Extensions&Strikethrough != 0 {
		s.triggers['~'] = []scanFunc{scanStrikethrough}
	}
	s.triggers['['] = []scanFunc{scanLink}
	if opts.Extensions&Images != 0 {
		s.triggers['!'] = []scanFunc{scanImage}
	}
	s.triggers['>'] = []scanFunc{scanBlockquote}
	if opts.Extensions&Tables != 0 {
		s.triggers['|'] = []scanFunc{scanTable}
	}

	return s
}

// Tokenize scans the whole input and returns the tokens in source order.
// Malformed constructs come back as text; scanning never fails.
func (s *Scanner) Tokenize() []Token {
	s.pos, s.line, s.lineStart = 0, 1, 0
	s.tokens = nil
	s.eolFrom, s.eol = 1, 0
	s.blankFor = -1
	s.colAt, s.colRunes = 0, 0
	s.bracketMiss = 0

	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c == '\n' || (isspace(c) && s.atLineStart()) {
			s.advanceTo(s.pos + 1)
			continue
		}

		matched := false
		for _, scan := range s.triggers[c] {
			if tok, end := scan(s); tok != nil {
				s.emit(tok, end)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		tok, end := scanText(s)
		if tok != nil {
			s.emit(tok, end)
		} else {
			s.advanceTo(end)
		}
	}

	return s.tokens
}

func (s *Scanner) emit(tok Token, end int) {
	b := tok.Base()
	s.trace("token", "kind", tok.Kind(), "at", b.Position, "indent", b.Indent, "content", b.Content)
	s.tokens = append(s.tokens, tok)
	s.advanceTo(end)
}

// advanceTo moves the cursor forward to end, keeping line bookkeeping.
func (s *Scanner) advanceTo(end int) {
	for ; s.pos < end && s.pos < len(s.input); s.pos++ {
		if s.input[s.pos] == '\n' {
			s.line++
			s.lineStart = s.pos + 1
		}
	}
}

// atLineStart reports whether only whitespace precedes the cursor on the
// current line.
func (s *Scanner) atLineStart() bool {
	if s.blankFor != s.lineStart {
		i := s.lineStart
		for i < len(s.input) && s.input[i] != '\n' && isspace(s.input[i]) {
			i++
		}
		s.blankFor, s.blankEnd = s.lineStart, i
	}
	return s.pos <= s.blankEnd
}

// position counts columns from the last position asked for on the same
// line, so a line with many tokens is only walked once.
func (s *Scanner) position() Position {
	if s.colAt < s.lineStart || s.colAt > s.pos {
		s.colAt, s.colRunes = s.lineStart, 0
	}
	s.colRunes += utf8.RuneCountInString(s.input[s.colAt:s.pos])
	s.colAt = s.pos
	return Position{
		Line:   s.line,
		Column: s.colRunes + 1,
		Offset: s.pos,
	}
}

// indent measures the leading whitespace of the current line, expanding
// tabs to the next TabSize column.
func (s *Scanner) indent() int {
	width := 0
	for i := s.lineStart; i < s.pos && i < len(s.input); i++ {
		switch s.input[i] {
		case ' ':
			width++
		case '\t':
			width += TabSize - width%TabSize
		default:
			return width
		}
	}
	return width
}

// common builds the shared token fields for a token starting at the cursor.
func (s *Scanner) common(content string) Common {
	return Common{
		Content:  strings.TrimSpace(content),
		Position: s.position(),
		Indent:   s.indent(),
	}
}

// lineEnd returns the offset of the newline ending the line that contains
// i, or the input length.
func (s *Scanner) lineEnd(i int) int {
	if i >= s.eolFrom && i <= s.eol {
		return s.eol
	}
	end := len(s.input)
	if off := strings.IndexByte(s.input[i:], '\n'); off >= 0 {
		end = i + off
	}
	s.eolFrom, s.eol = i, end
	return end
}

// Test if a character is a whitespace character.
func isspace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isdigit(c byte) bool {
	return c >= '0' && c <= '9'
}
