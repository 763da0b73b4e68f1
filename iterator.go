package tinymark

import "strings"

// linespan implements a minimal line iterator over '\n' delimited content
type linespan struct{ begin, end int }

// next updates begin and end to point to the next line
func (sc *linespan) next(content string) bool {
	sc.begin = sc.end
	if sc.begin >= len(content) {
		return false
	}

	off := strings.IndexByte(content[sc.begin:], '\n')
	if off >= 0 {
		sc.end = sc.begin + off + 1
		return true
	}

	sc.end = len(content)
	return true
}

// text returns the current line without its newline
func (sc *linespan) text(content string) string {
	return strings.TrimSuffix(content[sc.begin:sc.end], "\n")
}
