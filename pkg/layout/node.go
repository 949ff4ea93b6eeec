// Package layout composes a card's layered visual tree. Builders are
// pure functions from card data + resolved style to a Node tree; the
// tree serializes to self-contained HTML (all styles inline, glyphs as
// inline SVG) so the same markup renders identically in the interactive
// preview and in the offscreen rasterizer.
package layout

import (
	"html"
	"strings"
)

// Attr is one HTML attribute. Attributes keep insertion order so
// serialization is deterministic.
type Attr struct {
	Key   string
	Value string
}

// Node is one element of the visual tree.
type Node struct {
	Tag      string
	Classes  []string
	Styles   []string // CSS declarations, "prop: value"
	Attrs    []Attr
	Text     string // escaped on write, mutually exclusive with Children in practice
	Children []*Node
}

// El starts a new element.
func El(tag string) *Node { return &Node{Tag: tag} }

// Div is the most common case.
func Div() *Node { return El("div") }

// Cls appends a class name.
func (n *Node) Cls(c string) *Node {
	n.Classes = append(n.Classes, c)
	return n
}

// CSS appends one or more CSS declarations ("prop: value").
func (n *Node) CSS(decls ...string) *Node {
	n.Styles = append(n.Styles, decls...)
	return n
}

// Attr appends an attribute.
func (n *Node) Attr(key, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{key, value})
	return n
}

// Txt sets the node's text content.
func (n *Node) Txt(s string) *Node {
	n.Text = s
	return n
}

// Kids appends children, skipping nils so optional layers can be
// composed without branching at the call site.
func (n *Node) Kids(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// RawSVG wraps pre-built SVG markup (element glyphs) as a leaf node.
func RawSVG(markup string) *Node {
	return &Node{Tag: "", Text: markup}
}

// Clone deep-copies the tree. Mutating presentation state for export
// happens on a clone so the caller's tree is never touched.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Tag: n.Tag, Text: n.Text}
	out.Classes = append([]string(nil), n.Classes...)
	out.Styles = append([]string(nil), n.Styles...)
	out.Attrs = append([]Attr(nil), n.Attrs...)
	for _, c := range n.Children {
		out.Children = append(out.Children, c.Clone())
	}
	return out
}

// Walk visits every node in the tree, depth first.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// HasClass reports whether the node carries the given class.
func (n *Node) HasClass(c string) bool {
	for _, have := range n.Classes {
		if have == c {
			return true
		}
	}
	return false
}

// HTML serializes the tree.
func (n *Node) HTML() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.Tag == "" {
		// Raw leaf: trusted markup built by this module, not user input.
		b.WriteString(n.Text)
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	if len(n.Classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(strings.Join(n.Classes, " ")))
		b.WriteString(`"`)
	}
	if len(n.Styles) > 0 {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(strings.Join(n.Styles, "; ")))
		b.WriteString(`"`)
	}
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteString(`"`)
	}
	if n.Tag == "img" {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	if n.Text != "" {
		b.WriteString(html.EscapeString(n.Text))
	}
	for _, c := range n.Children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}
