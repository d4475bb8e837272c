package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads an HTML document. Option selection and control values present
// in the markup seed the live properties.
func Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("dom: missing reader")
	}
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	d := &Document{}
	d.root = &Element{Type: DocumentNode, doc: d}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := d.fromHTML(c); n != nil {
			d.root.AppendChild(n)
		}
	}
	return d, nil
}

// ParseString is Parse over a string.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	if d == nil {
		return fmt.Errorf("dom: document is nil")
	}
	return html.Render(w, toHTML(d.root))
}

// String renders the document, returning "" on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// OuterHTML renders the element and its subtree.
func (e *Element) OuterHTML() string {
	if e == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, toHTML(e)); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML renders the element's children.
func (e *Element) InnerHTML() string {
	if e == nil {
		return ""
	}
	var buf bytes.Buffer
	for _, c := range e.children {
		if err := html.Render(&buf, toHTML(c)); err != nil {
			return ""
		}
	}
	return buf.String()
}

func (d *Document) fromHTML(n *html.Node) *Element {
	switch n.Type {
	case html.DoctypeNode:
		return &Element{Type: DoctypeNode, Data: n.Data, doc: d}
	case html.TextNode:
		return d.CreateTextNode(n.Data)
	case html.ElementNode:
		el := d.CreateElement(n.Data)
		for _, attr := range n.Attr {
			el.attrs = append(el.attrs, Attribute{Key: strings.ToLower(attr.Key), Val: attr.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := d.fromHTML(c); child != nil {
				el.AppendChild(child)
			}
		}
		switch el.Tag {
		case "option":
			_, el.selected = el.Attr("selected")
		case "input":
			el.value, _ = el.Attr("value")
		case "textarea":
			el.value = el.TextContent()
		}
		return el
	default:
		return nil
	}
}

func toHTML(e *Element) *html.Node {
	var n *html.Node
	switch e.Type {
	case DocumentNode:
		n = &html.Node{Type: html.DocumentNode}
	case DoctypeNode:
		return &html.Node{Type: html.DoctypeNode, Data: e.Data}
	case TextNode:
		return &html.Node{Type: html.TextNode, Data: e.Data}
	default:
		n = &html.Node{
			Type:     html.ElementNode,
			Data:     e.Tag,
			DataAtom: atom.Lookup([]byte(e.Tag)),
			Attr:     liveAttrs(e),
		}
	}
	for _, c := range e.children {
		n.AppendChild(toHTML(c))
	}
	return n
}

// liveAttrs reflects live properties back into markup attributes so a
// rendered document round-trips through Parse.
func liveAttrs(e *Element) []html.Attribute {
	out := make([]html.Attribute, 0, len(e.attrs)+1)
	for _, attr := range e.attrs {
		switch {
		case e.Tag == "option" && attr.Key == "selected":
			continue
		case e.Tag == "input" && attr.Key == "value":
			continue
		}
		out = append(out, html.Attribute{Key: attr.Key, Val: attr.Val})
	}
	switch e.Tag {
	case "option":
		if e.selected {
			out = append(out, html.Attribute{Key: "selected", Val: ""})
		}
	case "input":
		if e.value != "" {
			out = append(out, html.Attribute{Key: "value", Val: e.value})
		}
	}
	return out
}
