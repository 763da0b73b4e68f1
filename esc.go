package tinymark

import "bytes"

type escMap struct {
	char byte
	seq  string
}

var htmlEscaper = []escMap{
	{'&', "&amp;"},
	{'<', "&lt;"},
	{'>', "&gt;"},
	{'"', "&quot;"},
	{'\'', "&#39;"},
}

// escapeHTML writes s to w with & < > " and ' replaced by entities.
func escapeHTML(w *bytes.Buffer, s string) {
	start := 0
	for end := 0; end < len(s); end++ {
		c := s[end]
		if c != '&' && c != '<' && c != '>' && c != '"' && c != '\'' {
			continue
		}
		for i := 0; i < len(htmlEscaper); i++ {
			if c == htmlEscaper[i].char {
				w.WriteString(s[start:end])
				w.WriteString(htmlEscaper[i].seq)
				start = end + 1
				break
			}
		}
	}
	w.WriteString(s[start:])
}
