package view

import (
	"html/template"
	"strings"
)

// Container is the server-side stand-in for a DOM container element. Each
// controller owns exactly one and renders by clear-and-rebuild; no node
// outlives its container's rebuild cycle.
type Container struct {
	nodes []*Node
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Clear() {
	c.nodes = nil
}

// Replace clears the container and installs the given nodes.
func (c *Container) Replace(nodes ...*Node) {
	c.nodes = append([]*Node(nil), nodes...)
}

func (c *Container) Append(nodes ...*Node) {
	c.nodes = append(c.nodes, nodes...)
}

func (c *Container) Nodes() []*Node {
	out := make([]*Node, len(c.nodes))
	copy(out, c.nodes)
	return out
}

func (c *Container) Len() int {
	return len(c.nodes)
}

// RemoveWhere drops every top-level node matching pred and reports how many
// were removed.
func (c *Container) RemoveWhere(pred func(*Node) bool) int {
	kept := c.nodes[:0]
	removed := 0
	for _, n := range c.nodes {
		if pred(n) {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	c.nodes = kept
	return removed
}

func (c *Container) HTML() template.HTML {
	var b strings.Builder
	for _, n := range c.nodes {
		b.WriteString(string(n.HTML()))
	}
	return template.HTML(b.String())
}
