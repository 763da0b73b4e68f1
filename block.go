//
// Tinymark Markdown Processor
// Available at http://github.com/tinymark/tinymark
//
// Copyright © The Tinymark Authors.
// Distributed under the Simplified BSD License.
// See LICENSE for details.
//

//
// Functions to scan block-level elements.
// Each of them only matches at the start of a line.
//

package tinymark

import (
	"strconv"
	"strings"
)

// # Heading, ## Heading ... up to ###### Heading
func scanHeading(s *Scanner) (Token, int) {
	if !s.atLineStart() {
		return nil, 0
	}
	data, end := s.input[s.pos:s.lineEnd(s.pos)], s.lineEnd(s.pos)

	level := 0
	for level < len(data) && data[level] == '#' {
		level++
	}
	if level > 6 || level == len(data) || (data[level] != ' ' && data[level] != '\t') {
		return nil, 0
	}

	content := strings.TrimSpace(data[level:])
	// skip the optional closing sequence
	if trimmed := strings.TrimRight(content, "#"); trimmed != content {
		if trimmed == "" || isspace(trimmed[len(trimmed)-1]) {
			content = strings.TrimSpace(trimmed)
		}
	}

	if strings.EqualFold(content, "title") {
		level, content = 1, "title"
	}

	return &HeadingToken{
		Common:      s.common(content),
		HeadingData: HeadingData{Level: level},
	}, end
}

// a line of three or more '-', '*' or '_', optionally separated by spaces
func scanHorizontalRule(s *Scanner) (Token, int) {
	if !s.atLineStart() {
		return nil, 0
	}
	end := s.lineEnd(s.pos)
	c := s.input[s.pos]

	n := 0
	for i := s.pos; i < end; i++ {
		switch {
		case s.input[i] == c:
			n++
		case isspace(s.input[i]):
		default:
			return nil, 0
		}
	}
	if n < 3 {
		return nil, 0
	}

	return &HorizontalRuleToken{Common: s.common("")}, end
}

// "* item", "- item", "+ item" or "12. item"
func scanList(s *Scanner) (Token, int) {
	if !s.atLineStart() {
		return nil, 0
	}
	end := s.lineEnd(s.pos)
	data := s.input[s.pos:end]

	if n := uliPrefix(data); n > 0 {
		return &ListToken{Common: s.common(data[n:])}, end
	}

	n, number := oliPrefix(data)
	if n == 0 {
		return nil, 0
	}
	return &ListToken{
		Common:   s.common(data[n:]),
		ListData: ListData{Ordered: true, StartNumber: number},
	}, end
}

// returns unordered list item prefix
func uliPrefix(data string) int {
	// need a *, + or - followed by a space/tab
	if len(data) < 2 ||
		(data[0] != '*' && data[0] != '+' && data[0] != '-') ||
		(data[1] != ' ' && data[1] != '\t') {
		return 0
	}
	return 2
}

// returns ordered list item prefix and the item number
func oliPrefix(data string) (int, int) {
	i := 0
	for i < len(data) && isdigit(data[i]) {
		i++
	}

	// we need 1 to 9 digits followed by a dot and a space/tab
	if i == 0 || i > 9 || i+1 >= len(data) || data[i] != '.' ||
		(data[i+1] != ' ' && data[i+1] != '\t') {
		return 0, 0
	}
	number, err := strconv.Atoi(data[:i])
	if err != nil {
		return 0, 0
	}
	return i + 2, number
}

// > quoted line; every line is a token of its own
func scanBlockquote(s *Scanner) (Token, int) {
	if !s.atLineStart() {
		return nil, 0
	}
	end := s.lineEnd(s.pos)
	return &BlockquoteToken{Common: s.common(s.input[s.pos+1 : end])}, end
}

// | header | header |
// |:-------|-------:|
// | cell   | cell   |
func scanTable(s *Scanner) (Token, int) {
	if !s.atLineStart() {
		return nil, 0
	}
	headerEnd := s.lineEnd(s.pos)
	headers := tableCells(s.input[s.pos:headerEnd])
	tok := &TableToken{
		Common:    s.common(""),
		TableData: TableData{Headers: headers},
	}

	// the alignment row decides whether body rows follow
	lines := linespan{begin: headerEnd + 1, end: headerEnd + 1}
	if !lines.next(s.input) || !isTableLine(lines.text(s.input)) {
		return tok, headerEnd
	}
	cells := tableCells(lines.text(s.input))
	if !isAlignmentRow(cells) {
		return tok, headerEnd
	}
	tok.Alignments = make([]Alignment, len(headers))
	for i := range tok.Alignments {
		if i < len(cells) {
			tok.Alignments[i] = cellAlignment(cells[i])
		}
	}
	end := lines.end

	for lines.next(s.input) && isTableLine(lines.text(s.input)) {
		tok.Rows = append(tok.Rows, fitRow(tableCells(lines.text(s.input)), len(headers)))
		end = lines.end
	}

	return tok, end
}

func isTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "|")
}

// tableCells splits a table line into trimmed cells. The leading pipe is
// required, the trailing one is optional.
func tableCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	if line == "" {
		return []string{}
	}
	line = strings.TrimSuffix(line, "|")

	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// isAlignmentRow reports whether every cell is of the form :?-+:?
func isAlignmentRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		cell = strings.TrimSuffix(strings.TrimPrefix(cell, ":"), ":")
		if cell == "" || strings.Trim(cell, "-") != "" {
			return false
		}
	}
	return true
}

func cellAlignment(cell string) Alignment {
	switch {
	case strings.HasPrefix(cell, ":") && strings.HasSuffix(cell, ":"):
		return AlignCenter
	case strings.HasSuffix(cell, ":"):
		return AlignRight
	default:
		return AlignLeft
	}
}

// fitRow pads or cuts a body row to the number of header columns.
func fitRow(cells []string, columns int) []string {
	if len(cells) > columns {
		return cells[:columns]
	}
	for len(cells) < columns {
		cells = append(cells, "")
	}
	return cells
}
