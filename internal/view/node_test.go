package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeHTMLEscapes(t *testing.T) {
	n := Elem("p").
		AddClass("note").
		SetAttr("data-x", `a"b`).
		SetText("<script>alert(1)</script>")

	html := string(n.HTML())
	assert.Contains(t, html, `class="note"`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&#34;")
	assert.NotContains(t, html, "<script>")
}

func TestNodeSetAttrReplaces(t *testing.T) {
	n := Elem("div").SetAttr("id", "a").SetAttr("id", "b")
	v, ok := n.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestNodeFindAndTextContent(t *testing.T) {
	root := Elem("div").Append(
		Elem("h3").SetText("Dr. A"),
		Elem("div").Append(Elem("button").SetText("Delete")),
	)
	assert.Len(t, root.FindTag("button"), 1)
	assert.Equal(t, "Dr. ADelete", root.TextContent())
}

func TestContainerReplaceAndClear(t *testing.T) {
	c := NewContainer()
	c.Replace(Elem("div"), Elem("div"))
	assert.Equal(t, 2, c.Len())

	c.Replace(Elem("p"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestContainerRemoveWhere(t *testing.T) {
	c := NewContainer()
	c.Replace(
		Elem("div").SetAttr("data-doctor-id", "1"),
		Elem("div").SetAttr("data-doctor-id", "2"),
		Elem("div").SetAttr("data-doctor-id", "3"),
	)

	removed := c.RemoveWhere(func(n *Node) bool {
		v, _ := n.Attr("data-doctor-id")
		return v == "2"
	})
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, c.Len())
	for _, n := range c.Nodes() {
		v, _ := n.Attr("data-doctor-id")
		assert.NotEqual(t, "2", v)
	}
}
