package dom

import (
	"strings"
)

// Document owns a node tree, the focused element and a timer queue.
type Document struct {
	root   *Element
	active *Element
	timers timerQueue
}

// NewDocument returns an empty document with html, head and body elements.
func NewDocument() *Document {
	d := &Document{}
	d.root = &Element{Type: DocumentNode, doc: d}
	htmlEl := d.root.AppendChild(d.CreateElement("html"))
	htmlEl.AppendChild(d.CreateElement("head"))
	htmlEl.AppendChild(d.CreateElement("body"))
	return d
}

// Root returns the document node.
func (d *Document) Root() *Element {
	if d == nil {
		return nil
	}
	return d.root
}

// Body returns the body element, or the document node when none exists.
func (d *Document) Body() *Element {
	if d == nil {
		return nil
	}
	if body := d.first(func(n *Element) bool { return n.Type == ElementNode && n.Tag == "body" }); body != nil {
		return body
	}
	return d.root
}

// CreateElement returns a detached element owned by the document.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{
		Type: ElementNode,
		Tag:  strings.ToLower(strings.TrimSpace(tag)),
		doc:  d,
	}
}

// CreateTextNode returns a detached text node owned by the document.
func (d *Document) CreateTextNode(text string) *Element {
	return &Element{Type: TextNode, Data: text, doc: d}
}

// GetElementByID returns the first connected element with the given id.
func (d *Document) GetElementByID(id string) *Element {
	if d == nil || id == "" {
		return nil
	}
	return d.first(func(n *Element) bool {
		return n.Type == ElementNode && n.ID() == id
	})
}

// QueryAll returns connected elements with the given tag name in document order.
func (d *Document) QueryAll(tag string) []*Element {
	if d == nil {
		return nil
	}
	tag = strings.ToLower(tag)
	var out []*Element
	d.root.walk(func(n *Element) bool {
		if n.Type == ElementNode && n.Tag == tag {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Element {
	if d == nil {
		return nil
	}
	return d.active
}

func (d *Document) first(match func(*Element) bool) *Element {
	var found *Element
	d.root.walk(func(n *Element) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}
