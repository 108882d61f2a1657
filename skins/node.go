package skins

import (
	"strings"

	"github.com/goliatone/go-portfolio/pkg/types"
)

// Node is one element of a render tree. A node without Tag is a text run or,
// when it has children, a fragment.
type Node struct {
	Tag      string
	Class    string
	Href     string
	Section  types.SectionID
	Text     string
	Children []*Node
}

// El builds an element. Nil children are skipped.
func El(tag, class string, children ...*Node) *Node {
	return (&Node{Tag: tag, Class: class}).Add(children...)
}

// TextEl builds an element holding a single text run.
func TextEl(tag, class, text string) *Node {
	return &Node{Tag: tag, Class: class, Text: text}
}

// Link builds an anchor.
func Link(class, href, text string) *Node {
	return &Node{Tag: "a", Class: class, Href: href, Text: text}
}

// Add appends non-nil children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Walk visits n and its descendants depth first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Find returns the first node tagged with section id.
func (n *Node) Find(id types.SectionID) *Node {
	var found *Node
	n.Walk(func(node *Node) {
		if found == nil && node.Section == id {
			found = node
		}
	})
	return found
}

// TextContent concatenates every text run under n.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(node *Node) {
		if node.Text == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(node.Text)
	})
	return b.String()
}

// SectionIDs lists the section ids present in the tree in document order.
func SectionIDs(root *Node) []types.SectionID {
	var ids []types.SectionID
	root.Walk(func(node *Node) {
		if node.Section != "" {
			ids = append(ids, node.Section)
		}
	})
	return ids
}
