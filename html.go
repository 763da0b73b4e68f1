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
// HTML rendering backend
//
//

package tinymark

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shurcooL/sanitized_anchor_name"
)

type HTMLFlags int

// HTML renderer configuration options.
const (
	HTMLFlagsNone   HTMLFlags = 0
	SkipImages      HTMLFlags = 1 << iota // Skip embedded images
	Safelink                              // Only link to trusted protocols
	NofollowLinks                         // Only link with rel="nofollow"
	NoreferrerLinks                       // Only link with rel="noreferrer"
	HrefTargetBlank                       // Add a blank target
	HeaderIDs                             // Give every heading an id derived from its text
	TOC                                   // Generate a table of contents (implies HeaderIDs)
	CompletePage                          // Generate a complete HTML page
	UseXHTML                              // Close <img> tags XHTML style

	CommonHTMLFlags = Safelink | HeaderIDs
)

type HTMLRendererParameters struct {
	// Prepend this text to each relative URL.
	AbsolutePrefix string
	// If set, add this text to the front of each Header ID, to ensure
	// uniqueness.
	HeaderIDPrefix string
	// If set, add this text to the back of each Header ID, to ensure uniqueness.
	HeaderIDSuffix string
	// Page title for CompletePage; the first heading is used when empty.
	Title string
	// Optional stylesheet URL for CompletePage.
	CSS string
}

const (
	xhtmlClose = " />"
	htmlClose  = ">"
)

type tocEntry struct {
	level int
	id    string
	text  string
}

// HTMLRenderer turns a syntax tree into HTML.
//
// Render may be called any number of times; each call starts from a clean
// state. An HTMLRenderer is not safe for concurrent use.
type HTMLRenderer struct {
	flags    HTMLFlags
	closeTag string // how to end <img> tags: either " />" or ">"
	params   HTMLRendererParameters

	w           bytes.Buffer
	para        bytes.Buffer // pending inline run
	inParagraph bool

	// Track header IDs to prevent ID collision in a single generation.
	headerIDs map[string]int
	toc       []tocEntry
}

// NewHTMLRenderer creates and configures an HTML renderer.
// flags is a set of HTMLFlags ORed together.
func NewHTMLRenderer(flags HTMLFlags, params HTMLRendererParameters) *HTMLRenderer {
	closeTag := htmlClose
	if flags&UseXHTML != 0 {
		closeTag = xhtmlClose
	}
	if flags&TOC != 0 {
		flags |= HeaderIDs
	}
	return &HTMLRenderer{
		flags:    flags,
		closeTag: closeTag,
		params:   params,
	}
}

// Render renders ast with a default renderer.
func Render(ast []Node) string {
	return NewHTMLRenderer(HTMLFlagsNone, HTMLRendererParameters{}).Render(ast)
}

// Render produces the HTML for ast in a single pass. The tree is expected
// to come from Parse; no validation is done.
func (r *HTMLRenderer) Render(ast []Node) string {
	r.w.Reset()
	r.para.Reset()
	r.inParagraph = false
	r.headerIDs = make(map[string]int)
	r.toc = nil

	for i := 0; i < len(ast); {
		i = r.block(ast, i)
	}
	r.flushParagraph()

	var out bytes.Buffer
	r.documentHeader(&out, ast)
	if r.flags&TOC != 0 {
		r.tocNav(&out)
	}
	out.Write(r.w.Bytes())
	r.documentFooter(&out)
	return out.String()
}

// block renders the node at ast[i] and returns the index of the next node
// to render. Lists and tables consume their whole run of nodes.
func (r *HTMLRenderer) block(ast []Node, i int) int {
	if isInline(ast[i]) {
		r.inline(ast[i])
		return i + 1
	}
	r.flushParagraph()

	switch n := ast[i].(type) {
	case *HeadingNode:
		r.heading(n)
	case *BlockquoteNode:
		r.w.WriteString("<blockquote>")
		escapeHTML(&r.w, n.Content)
		r.w.WriteString("</blockquote>\n")
	case *ImageNode:
		r.image(n)
	case *HorizontalRuleNode:
		r.w.WriteString("<hr />\n")
	case *ListNode:
		var items []*ListNode
		for ; i < len(ast); i++ {
			item, ok := ast[i].(*ListNode)
			if !ok {
				break
			}
			items = append(items, item)
		}
		r.lists(items)
		return i
	case *TableNode:
		var rows []*TableNode
		for ; i < len(ast); i++ {
			row, ok := ast[i].(*TableNode)
			if !ok {
				break
			}
			rows = append(rows, row)
		}
		r.table(rows)
		return i
	}
	return i + 1
}

func (r *HTMLRenderer) inline(node Node) {
	r.inParagraph = true
	switch n := node.(type) {
	case *TextNode:
		escapeHTML(&r.para, n.Content)
	case *BoldNode:
		r.span("strong", n.Content)
	case *ItalicNode:
		r.span("em", n.Content)
	case *StrikethroughNode:
		r.span("del", n.Content)
	case *LinkNode:
		r.link(n)
	}
}

func (r *HTMLRenderer) span(tag, text string) {
	r.para.WriteString("<" + tag + ">")
	escapeHTML(&r.para, text)
	r.para.WriteString("</" + tag + ">")
}

func (r *HTMLRenderer) flushParagraph() {
	if !r.inParagraph {
		return
	}
	r.w.WriteString("<p>")
	r.w.Write(r.para.Bytes())
	r.w.WriteString("</p>\n")
	r.para.Reset()
	r.inParagraph = false
}

func (r *HTMLRenderer) heading(n *HeadingNode) {
	level := min(max(n.Level, 1), 6)

	id := ""
	if r.flags&HeaderIDs != 0 {
		id = r.headingID(n.Content)
		fmt.Fprintf(&r.w, "<h%d id=\"", level)
		escapeHTML(&r.w, id)
		r.w.WriteString("\">")
	} else {
		fmt.Fprintf(&r.w, "<h%d>", level)
	}
	escapeHTML(&r.w, n.Content)
	fmt.Fprintf(&r.w, "</h%d>\n", level)

	if r.flags&TOC != 0 {
		r.toc = append(r.toc, tocEntry{level: level, id: id, text: n.Content})
	}
}

func (r *HTMLRenderer) headingID(text string) string {
	id := sanitized_anchor_name.Create(text)
	if id == "" {
		id = "section"
	}
	id = r.ensureUniqueHeaderID(id)
	return r.params.HeaderIDPrefix + id + r.params.HeaderIDSuffix
}

func (r *HTMLRenderer) ensureUniqueHeaderID(id string) string {
	for count, found := r.headerIDs[id]; found; count, found = r.headerIDs[id] {
		tmp := fmt.Sprintf("%s-%d", id, count+1)

		if _, tmpFound := r.headerIDs[tmp]; !tmpFound {
			r.headerIDs[id] = count + 1
			id = tmp
		} else {
			id = id + "-1"
		}
	}

	if _, found := r.headerIDs[id]; !found {
		r.headerIDs[id] = 0
	}

	return id
}

func (r *HTMLRenderer) link(n *LinkNode) {
	if r.flags&Safelink != 0 && !isSafeLink(n.URL) && !isRelativeLink(n.URL) {
		// not a trusted protocol: keep the text, drop the link
		escapeHTML(&r.para, n.Content)
		return
	}

	r.para.WriteString("<a href=\"")
	escapeHTML(&r.para, r.addAbsPrefix(n.URL))
	r.para.WriteString("\"")
	for _, attr := range appendLinkAttrs(nil, r.flags, n.URL) {
		r.para.WriteString(" " + attr)
	}
	r.para.WriteString(">")
	escapeHTML(&r.para, n.Content)
	r.para.WriteString("</a>")
}

func (r *HTMLRenderer) image(n *ImageNode) {
	if r.flags&SkipImages != 0 {
		return
	}
	r.w.WriteString("<p><img src=\"")
	escapeHTML(&r.w, r.addAbsPrefix(n.URL))
	r.w.WriteString("\" alt=\"")
	escapeHTML(&r.w, n.Alt)
	r.w.WriteString("\"")
	if n.Content != "" {
		r.w.WriteString(" title=\"")
		escapeHTML(&r.w, n.Content)
		r.w.WriteString("\"")
	}
	r.w.WriteString(r.closeTag)
	r.w.WriteString("</p>\n")
}

// lists renders consecutive list items, starting a new list whenever the
// ordered flag changes. Nested items are rendered the same way inside
// their parent's <li>.
func (r *HTMLRenderer) lists(items []*ListNode) {
	for len(items) > 0 {
		n := 1
		for n < len(items) && items[n].Ordered == items[0].Ordered {
			n++
		}
		r.list(items[:n])
		items = items[n:]
	}
}

func (r *HTMLRenderer) list(items []*ListNode) {
	tag := "ul"
	if items[0].Ordered {
		tag = "ol"
	}

	r.w.WriteString("<" + tag)
	if items[0].Ordered && items[0].StartNumber != 1 {
		fmt.Fprintf(&r.w, " start=\"%d\"", items[0].StartNumber)
	}
	r.w.WriteString(">\n")

	for _, item := range items {
		r.w.WriteString("<li>")
		escapeHTML(&r.w, item.Content)
		if len(item.Items) > 0 {
			r.w.WriteByte('\n')
			r.lists(item.Items)
		}
		r.w.WriteString("</li>\n")
	}

	r.w.WriteString("</" + tag + ">\n")
}

// table renders a run of table nodes as one table. The first node
// provides the header; the header line of every following node becomes a
// body row unless it is an alignment line.
func (r *HTMLRenderer) table(nodes []*TableNode) {
	head := nodes[0]

	r.w.WriteString("<table>\n<thead>\n<tr>\n")
	for i, text := range head.Headers {
		r.tableCell("th", text, alignmentAt(head.Alignments, i))
	}
	r.w.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, row := range head.Rows {
		r.tableRow(row, head.Alignments)
	}
	for _, n := range nodes[1:] {
		if !isAlignmentHeaders(n.Headers) {
			r.tableRow(n.Headers, head.Alignments)
		}
		for _, row := range n.Rows {
			r.tableRow(row, head.Alignments)
		}
	}

	r.w.WriteString("</tbody>\n</table>\n")
}

func (r *HTMLRenderer) tableRow(cells []string, align []Alignment) {
	r.w.WriteString("<tr>\n")
	for i, text := range cells {
		r.tableCell("td", text, alignmentAt(align, i))
	}
	r.w.WriteString("</tr>\n")
}

func (r *HTMLRenderer) tableCell(tag, text string, align Alignment) {
	r.w.WriteString("<" + tag)
	if align != AlignLeft {
		fmt.Fprintf(&r.w, " align=\"%s\"", align)
	}
	r.w.WriteString(">")
	escapeHTML(&r.w, text)
	r.w.WriteString("</" + tag + ">\n")
}

func alignmentAt(align []Alignment, i int) Alignment {
	if i < len(align) {
		return align[i]
	}
	return AlignLeft
}

func isAlignmentHeaders(headers []string) bool {
	for _, h := range headers {
		if strings.Contains(h, "--") {
			return true
		}
	}
	return false
}

func (r *HTMLRenderer) documentHeader(out *bytes.Buffer, ast []Node) {
	if r.flags&CompletePage == 0 {
		return
	}

	title := r.params.Title
	if title == "" {
		for _, n := range ast {
			if h, ok := n.(*HeadingNode); ok {
				title = h.Content
				break
			}
		}
	}

	ending := ""
	if r.flags&UseXHTML != 0 {
		out.WriteString("<!DOCTYPE html PUBLIC \"-//W3C//DTD XHTML 1.0 Transitional//EN\" ")
		out.WriteString("\"http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd\">\n")
		out.WriteString("<html xmlns=\"http://www.w3.org/1999/xhtml\">\n")
		ending = " /"
	} else {
		out.WriteString("<!DOCTYPE html>\n")
		out.WriteString("<html>\n")
	}
	out.WriteString("<head>\n")
	out.WriteString("  <title>")
	escapeHTML(out, title)
	out.WriteString("</title>\n")
	out.WriteString("  <meta name=\"GENERATOR\" content=\"Tinymark Markdown Processor v" + Version + "\"" + ending + ">\n")
	out.WriteString("  <meta charset=\"utf-8\"" + ending + ">\n")
	if r.params.CSS != "" {
		out.WriteString("  <link rel=\"stylesheet\" type=\"text/css\" href=\"")
		escapeHTML(out, r.params.CSS)
		out.WriteString("\"" + ending + ">\n")
	}
	out.WriteString("</head>\n")
	out.WriteString("<body>\n\n")
}

func (r *HTMLRenderer) documentFooter(out *bytes.Buffer) {
	if r.flags&CompletePage == 0 {
		return
	}
	out.WriteString("\n</body>\n")
	out.WriteString("</html>\n")
}

func (r *HTMLRenderer) tocNav(out *bytes.Buffer) {
	if len(r.toc) == 0 {
		return
	}
	out.WriteString("<nav>\n<ul>\n")
	for _, entry := range r.toc {
		fmt.Fprintf(out, "<li class=\"toc-h%d\"><a href=\"#", entry.level)
		escapeHTML(out, entry.id)
		out.WriteString("\">")
		escapeHTML(out, entry.text)
		out.WriteString("</a></li>\n")
	}
	out.WriteString("</ul>\n</nav>\n\n")
}

var validUris = []string{"http://", "https://", "ftp://", "mailto:"}

func isSafeLink(link string) bool {
	for _, prefix := range validUris {
		// case-insensitive prefix test
		if len(link) > len(prefix) && strings.EqualFold(link[:len(prefix)], prefix) && isalnum(link[len(prefix)]) {
			return true
		}
	}
	return false
}

func isRelativeLink(link string) bool {
	if link == "" {
		return false
	}

	// a tag begin with '#'
	if link[0] == '#' {
		return true
	}

	// link begin with '/' but not '//', the second maybe a protocol relative link
	if len(link) >= 2 && link[0] == '/' && link[1] != '/' {
		return true
	}

	// only the root '/'
	if link == "/" {
		return true
	}

	// current directory : begin with "./"
	// parent directory : begin with "../"
	return strings.HasPrefix(link, "./") || strings.HasPrefix(link, "../")
}

func (r *HTMLRenderer) addAbsPrefix(link string) string {
	if r.params.AbsolutePrefix != "" && isRelativeLink(link) && link[0] != '.' {
		newDest := r.params.AbsolutePrefix
		if link[0] != '/' {
			newDest += "/"
		}
		return newDest + link
	}
	return link
}

func appendLinkAttrs(attrs []string, flags HTMLFlags, link string) []string {
	if isRelativeLink(link) {
		return attrs
	}
	val := []string{}
	if flags&NofollowLinks != 0 {
		val = append(val, "nofollow")
	}
	if flags&NoreferrerLinks != 0 {
		val = append(val, "noreferrer")
	}
	if flags&HrefTargetBlank != 0 {
		attrs = append(attrs, "target=\"_blank\"")
	}
	if len(val) == 0 {
		return attrs
	}
	attr := fmt.Sprintf("rel=%q", strings.Join(val, " "))
	return append(attrs, attr)
}

// Test if a character is a letter or a digit.
func isalnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
