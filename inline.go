//
// Tinymark Markdown Processor
// Available at http://github.com/tinymark/tinymark
//

//
// Functions to scan inline elements.
// Each of them needs its closing marker on the same line; when it is
// missing nothing is emitted and the opening character ends up in a
// text token.
//

package tinymark

import "strings"

// characters that end a run of plain text
var specialChars = [256]bool{
	'#': true, '*': true, '_': true, '[': true, '!': true,
	'>': true, '|': true, '~': true, '\n': true,
}

// **strong**
func scanBold(s *Scanner) (Token, int) {
	content, end := s.delimited("**")
	if end == 0 {
		return nil, 0
	}
	return &BoldToken{Common: s.common(content)}, end
}

// *emphasis*
func scanItalic(s *Scanner) (Token, int) {
	if strings.HasPrefix(s.input[s.pos:], "**") {
		return nil, 0
	}
	content, end := s.delimited("*")
	if end == 0 {
		return nil, 0
	}
	return &ItalicToken{Common: s.common(content)}, end
}

// ~~deleted~~
func scanStrikethrough(s *Scanner) (Token, int) {
	content, end := s.delimited("~~")
	if end == 0 {
		return nil, 0
	}
	return &StrikethroughToken{Common: s.common(content)}, end
}

// delimited looks for text enclosed in marker, starting at the cursor and
// ending on the same line. It returns the enclosed text and the offset past
// the closing marker, or 0 if there is no closing marker or nothing
// between the markers.
func (s *Scanner) delimited(marker string) (string, int) {
	if !strings.HasPrefix(s.input[s.pos:], marker) {
		return "", 0
	}
	begin := s.pos + len(marker)
	line := s.input[begin:s.lineEnd(begin)]

	off := strings.Index(line, marker)
	if off < 0 || strings.TrimSpace(line[:off]) == "" {
		return "", 0
	}
	return line[:off], begin + off + len(marker)
}

// [text](url)
func scanLink(s *Scanner) (Token, int) {
	text, dest, end := s.bracketed(s.pos)
	if end == 0 {
		return nil, 0
	}
	return &LinkToken{
		Common:   s.common(text),
		LinkData: LinkData{URL: dest},
	}, end
}

// ![alt](url "title")
func scanImage(s *Scanner) (Token, int) {
	if !strings.HasPrefix(s.input[s.pos:], "![") {
		return nil, 0
	}
	alt, dest, end := s.bracketed(s.pos + 1)
	if end == 0 {
		return nil, 0
	}
	url, title := splitTitle(dest)
	return &ImageToken{
		Common:    s.common(title),
		ImageData: ImageData{URL: url, Alt: strings.TrimSpace(alt)},
	}, end
}

// bracketed scans "[text](dest)" starting at offset i, which must hold
// the '['. Both parts have to be on the current line.
//
// Every '[' up to the first ']' after it shares that ']', so a failure
// holds for all of them and is remembered in bracketMiss.
func (s *Scanner) bracketed(i int) (text, dest string, end int) {
	if i < s.bracketMiss || i >= len(s.input) || s.input[i] != '[' {
		return "", "", 0
	}
	eol := s.lineEnd(i)
	line := s.input[i:eol]

	closing := strings.IndexByte(line, ']')
	if closing < 0 {
		s.bracketMiss = eol
		return "", "", 0
	}
	if closing+1 >= len(line) || line[closing+1] != '(' {
		s.bracketMiss = i + closing
		return "", "", 0
	}
	paren := strings.IndexByte(line[closing+2:], ')')
	if paren < 0 {
		s.bracketMiss = i + closing
		return "", "", 0
	}

	text = line[1:closing]
	dest = line[closing+2 : closing+2+paren]
	return text, dest, i + closing + 2 + paren + 1
}

// splitTitle separates an optional quoted title from a link destination:
// `image.png "A title"` yields "image.png" and "A title". Without a title
// the destination is returned untouched.
func splitTitle(dest string) (string, string) {
	trimmed := strings.TrimRight(dest, " \t")
	if !strings.HasSuffix(trimmed, `"`) || len(trimmed) < 2 {
		return dest, ""
	}
	open := strings.LastIndex(trimmed[:len(trimmed)-1], ` "`)
	if open < 0 {
		return dest, ""
	}
	return strings.TrimRight(trimmed[:open], " \t"), trimmed[open+2 : len(trimmed)-1]
}

// scanText takes the character under the cursor and everything up to the
// next special character. Text that is only whitespace yields no token.
func scanText(s *Scanner) (Token, int) {
	end := s.pos + 1
	for end < len(s.input) && !specialChars[s.input[end]] {
		end++
	}

	content := s.input[s.pos:end]
	if strings.TrimSpace(content) == "" {
		return nil, end
	}
	return &TextToken{Common: s.common(content)}, end
}
