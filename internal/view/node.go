package view

import (
	"html"
	"html/template"
	"strings"
)

// Node is a minimal server-side element tree. The dashboards build
// fragments the way the browser code built DOM nodes: create, set, append.
type Node struct {
	Tag      string
	text     string
	classes  []string
	attrs    []attr
	children []*Node
}

type attr struct {
	key   string
	value string
}

var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}

func Elem(tag string) *Node {
	return &Node{Tag: tag}
}

func (n *Node) AddClass(names ...string) *Node {
	n.classes = append(n.classes, names...)
	return n
}

func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces an attribute, keeping insertion order stable.
func (n *Node) SetAttr(key, value string) *Node {
	for i := range n.attrs {
		if n.attrs[i].key == key {
			n.attrs[i].value = value
			return n
		}
	}
	n.attrs = append(n.attrs, attr{key: key, value: value})
	return n
}

func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.key == key {
			return a.value, true
		}
	}
	return "", false
}

func (n *Node) SetText(s string) *Node {
	n.text = s
	return n
}

func (n *Node) Text() string {
	return n.text
}

func (n *Node) Append(children ...*Node) *Node {
	n.children = append(n.children, children...)
	return n
}

func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Find walks the subtree and returns every node matching pred, in document
// order, the receiver included.
func (n *Node) Find(pred func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if pred(cur) {
			out = append(out, cur)
		}
		for _, ch := range cur.children {
			walk(ch)
		}
	}
	walk(n)
	return out
}

func (n *Node) FindTag(tag string) []*Node {
	return n.Find(func(c *Node) bool { return c.Tag == tag })
}

// TextContent concatenates the subtree's text, like the DOM property.
func (n *Node) TextContent() string {
	var b strings.Builder
	var walk func(*Node)
	walk = func(cur *Node) {
		b.WriteString(cur.text)
		for _, ch := range cur.children {
			walk(ch)
		}
	}
	walk(n)
	return b.String()
}

// HTML renders the node with escaped text and attribute values.
func (n *Node) HTML() template.HTML {
	var b strings.Builder
	n.render(&b)
	return template.HTML(b.String())
}

func (n *Node) render(b *strings.Builder) {
	b.WriteString("<")
	b.WriteString(n.Tag)
	if len(n.classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(strings.Join(n.classes, " ")))
		b.WriteString(`"`)
	}
	for _, a := range n.attrs {
		b.WriteString(" ")
		b.WriteString(a.key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.value))
		b.WriteString(`"`)
	}
	if voidTags[n.Tag] {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(n.text))
	for _, ch := range n.children {
		ch.render(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
}
