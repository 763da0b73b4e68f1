package tinymark

// JSON encoding of tokens, nodes and parse results

import (
	"encoding/json"
	"strings"
)

type positionJSON struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// elementJSON is the wire shape shared by tokens and nodes. Type is the
// lower camel case kind name and tells which of the optional fields apply.
type elementJSON struct {
	Type     string       `json:"type"`
	Content  string       `json:"content"`
	Position positionJSON `json:"position"`
	Indent   int          `json:"indent"`

	Level       int           `json:"level,omitempty"`
	Ordered     *bool         `json:"ordered,omitempty"`
	StartNumber int           `json:"startNumber,omitempty"`
	Items       []elementJSON `json:"items,omitempty"`
	URL         string        `json:"url,omitempty"`
	Alt         string        `json:"alt,omitempty"`
	Headers     []string      `json:"headers,omitempty"`
	Rows        [][]string    `json:"rows,omitempty"`
	Alignments  []string      `json:"alignments,omitempty"`
}

type errorJSON struct {
	Message  string       `json:"message"`
	Position positionJSON `json:"position"`
}

type resultJSON struct {
	AST    []elementJSON `json:"ast"`
	Errors []errorJSON   `json:"errors"`
}

func typeName(k Kind) string {
	name := k.String()
	return strings.ToLower(name[:1]) + name[1:]
}

func newElementJSON(kind Kind, c Common) elementJSON {
	return elementJSON{
		Type:     typeName(kind),
		Content:  c.Content,
		Position: positionJSON(c.Position),
		Indent:   c.Indent,
	}
}

func (e *elementJSON) setList(d ListData) {
	ordered := d.Ordered
	e.Ordered = &ordered
	if d.Ordered {
		e.StartNumber = d.StartNumber
	}
}

func (e *elementJSON) setTable(d TableData) {
	e.Headers = d.Headers
	e.Rows = d.Rows
	for _, a := range d.Alignments {
		e.Alignments = append(e.Alignments, a.String())
	}
}

func nodeJSON(n Node) elementJSON {
	e := newElementJSON(n.Kind(), n.Base())
	switch n := n.(type) {
	case *HeadingNode:
		e.Level = n.Level
	case *ListNode:
		e.setList(n.ListData)
		for _, item := range n.Items {
			e.Items = append(e.Items, nodeJSON(item))
		}
	case *LinkNode:
		e.URL = n.URL
	case *ImageNode:
		e.URL, e.Alt = n.URL, n.Alt
	case *TableNode:
		e.setTable(n.TableData)
	}
	return e
}

func tokenJSON(t Token) elementJSON {
	e := newElementJSON(t.Kind(), t.Base())
	switch t := t.(type) {
	case *HeadingToken:
		e.Level = t.Level
	case *ListToken:
		e.setList(t.ListData)
	case *LinkToken:
		e.URL = t.URL
	case *ImageToken:
		e.URL, e.Alt = t.URL, t.Alt
	case *TableToken:
		e.setTable(t.TableData)
	}
	return e
}

// MarshalJSON encodes the result as {"ast": [...], "errors": [...]}. Both
// arrays are always present; nil nodes are left out.
func (r ParseResult) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		AST:    []elementJSON{},
		Errors: []errorJSON{},
	}
	for _, n := range r.AST {
		if n != nil {
			out.AST = append(out.AST, nodeJSON(n))
		}
	}
	for _, e := range r.Errors {
		if e != nil {
			out.Errors = append(out.Errors, errorJSON{Message: e.Message, Position: positionJSON(e.Position)})
		}
	}
	return json.Marshal(out)
}

// TokensJSON encodes a token sequence as a JSON array in the same shape
// as the nodes of a ParseResult. nil tokens are left out.
func TokensJSON(tokens []Token) ([]byte, error) {
	out := []elementJSON{}
	for _, t := range tokens {
		if t != nil {
			out = append(out, tokenJSON(t))
		}
	}
	return json.Marshal(out)
}
