package tinymark

// Pretty print a syntax tree

import (
	"bytes"
	"fmt"
	"strings"
)

// Dump returns a readable outline of ast, one node per line. Nested list
// items are indented by two spaces per level.
func Dump(ast []Node) string {
	var b bytes.Buffer
	for _, n := range ast {
		dump(&b, n, 0)
	}
	return b.String()
}

func dump(b *bytes.Buffer, n Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if n == nil {
		b.WriteString("<nil>\n")
		return
	}
	fmt.Fprintf(b, "%s%s(%q)\n", n.Kind(), describe(n), n.Base().Content)

	if l, ok := n.(*ListNode); ok {
		for _, item := range l.Items {
			dump(b, item, depth+1)
		}
	}
}

// describe returns the kind specific fields of n, in brackets.
func describe(n Node) string {
	switch n := n.(type) {
	case *HeadingNode:
		return fmt.Sprintf("[%d]", n.Level)
	case *ListNode:
		if n.Ordered {
			return fmt.Sprintf("[%d.]", n.StartNumber)
		}
		return "[*]"
	case *LinkNode:
		return fmt.Sprintf("[%s]", n.URL)
	case *ImageNode:
		return fmt.Sprintf("[%s %q]", n.URL, n.Alt)
	case *TableNode:
		return fmt.Sprintf("[%s %d rows]", strings.Join(n.Headers, "|"), len(n.Rows))
	}
	return ""
}
