package dom

import (
	"strings"
)

// NodeType distinguishes element, text and document nodes.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
	DocumentNode
	DoctypeNode
)

// Attribute is a single name/value pair. Order is preserved on render.
type Attribute struct {
	Key string
	Val string
}

// Element is a node in a Document tree. Text nodes carry their content in
// Data; element nodes carry their tag name in Tag.
type Element struct {
	Type NodeType
	Tag  string
	Data string

	attrs    []Attribute
	value    string
	selected bool

	parent   *Element
	children []*Element
	doc      *Document

	listeners map[string][]listener
}

// Document returns the owning document, or nil for detached nodes created
// outside a document.
func (e *Element) Document() *Document {
	if e == nil {
		return nil
	}
	return e.doc
}

// Parent returns the parent node.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	if e == nil || len(e.children) == 0 {
		return nil
	}
	return append([]*Element(nil), e.children...)
}

// ChildCount reports the number of direct children, text nodes included.
func (e *Element) ChildCount() int {
	if e == nil {
		return 0
	}
	return len(e.children)
}

// ID returns the id attribute.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Attr returns the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	key = strings.ToLower(key)
	for _, attr := range e.attrs {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute.
func (e *Element) SetAttr(key, val string) {
	if e == nil {
		return
	}
	key = strings.ToLower(key)
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs[i].Val = val
			return
		}
	}
	e.attrs = append(e.attrs, Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the named attribute when present.
func (e *Element) RemoveAttr(key string) {
	if e == nil {
		return
	}
	key = strings.ToLower(key)
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns a copy of the attribute list in render order.
func (e *Element) Attrs() []Attribute {
	if e == nil || len(e.attrs) == 0 {
		return nil
	}
	return append([]Attribute(nil), e.attrs...)
}

// Display returns the inline display value, or "" when none is set.
func (e *Element) Display() string {
	style, _ := e.Attr("style")
	for _, decl := range strings.Split(style, ";") {
		name, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), "display") {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

// SetDisplay sets the inline display value, keeping other declarations.
func (e *Element) SetDisplay(val string) {
	if e == nil {
		return
	}
	style, _ := e.Attr("style")
	decls := make([]string, 0, 2)
	for _, decl := range strings.Split(style, ";") {
		name, _, ok := strings.Cut(decl, ":")
		if !ok || strings.EqualFold(strings.TrimSpace(name), "display") {
			continue
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	if val = strings.TrimSpace(val); val != "" {
		decls = append(decls, "display: "+val)
	}
	if len(decls) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", strings.Join(decls, "; "))
}

// Hidden reports whether the element is hidden through display:none.
func (e *Element) Hidden() bool {
	return strings.EqualFold(e.Display(), "none")
}

// Value returns the current value of a form control. It mirrors the live
// property, not the markup attribute.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// SetValue updates the live value of a form control.
func (e *Element) SetValue(val string) {
	if e == nil {
		return
	}
	e.value = val
}

// Selected reports the live selected flag of an option.
func (e *Element) Selected() bool {
	if e == nil {
		return false
	}
	return e.selected
}

// SetSelected updates the live selected flag of an option.
func (e *Element) SetSelected(selected bool) {
	if e == nil {
		return
	}
	e.selected = selected
}

// Label returns the option's display text with surrounding whitespace trimmed.
func (e *Element) Label() string {
	return strings.TrimSpace(e.TextContent())
}

// Options returns the option descendants of a select element in document
// order, including options nested in optgroups.
func (e *Element) Options() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	e.walk(func(n *Element) bool {
		if n != e && n.Type == ElementNode && n.Tag == "option" {
			out = append(out, n)
		}
		return true
	})
	return out
}

// TextContent concatenates the text of all descendant text nodes.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}
	if e.Type == TextNode {
		return e.Data
	}
	var b strings.Builder
	e.walk(func(n *Element) bool {
		if n.Type == TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

// SetTextContent replaces all children with a single text node. The text is
// never interpreted as markup.
func (e *Element) SetTextContent(text string) {
	if e == nil {
		return
	}
	e.ReplaceChildren()
	if text == "" {
		return
	}
	e.AppendChild(&Element{Type: TextNode, Data: text, doc: e.doc})
}

// AppendChild attaches child as the last child, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) *Element {
	if e == nil || child == nil {
		return child
	}
	child.Remove()
	child.parent = e
	child.adopt(e.doc)
	e.children = append(e.children, child)
	return child
}

// InsertBefore inserts child immediately before ref. A nil or foreign ref
// appends.
func (e *Element) InsertBefore(child, ref *Element) *Element {
	if e == nil || child == nil {
		return child
	}
	if ref == nil || ref.parent != e {
		return e.AppendChild(child)
	}
	child.Remove()
	idx := e.indexOf(ref)
	child.parent = e
	child.adopt(e.doc)
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = child
	return child
}

// Remove detaches the node from its parent.
func (e *Element) Remove() {
	if e == nil || e.parent == nil {
		return
	}
	p := e.parent
	if idx := p.indexOf(e); idx >= 0 {
		p.children = append(p.children[:idx], p.children[idx+1:]...)
	}
	e.parent = nil
	if d := e.doc; d != nil && d.active != nil && e.contains(d.active) {
		d.active = nil
	}
}

// ReplaceChildren removes every child and appends the supplied nodes in order.
func (e *Element) ReplaceChildren(nodes ...*Element) {
	if e == nil {
		return
	}
	for len(e.children) > 0 {
		e.children[0].Remove()
	}
	for _, n := range nodes {
		e.AppendChild(n)
	}
}

// IsConnected reports whether the node is attached to its document's tree.
func (e *Element) IsConnected() bool {
	if e == nil || e.doc == nil {
		return false
	}
	for n := e; n != nil; n = n.parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// Focus makes the element the document's active element. Focusing a detached
// element is a no-op.
func (e *Element) Focus() {
	if !e.IsConnected() {
		return
	}
	e.doc.active = e
}

func (e *Element) indexOf(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (e *Element) contains(n *Element) bool {
	for ; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

func (e *Element) adopt(doc *Document) {
	e.walk(func(n *Element) bool {
		n.doc = doc
		return true
	})
}

// walk visits e and its descendants depth-first until fn returns false.
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
