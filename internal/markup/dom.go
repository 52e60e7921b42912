// Package markup wraps golang.org/x/net/html behind an owned-tree arena.
// A Tree is parsed from a fragment string, mutated in place, and serialized
// back to a string; it is never shared or aliased across pipeline calls.
package markup

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tree holds a parsed HTML fragment under a synthetic body root.
type Tree struct {
	root *html.Node
}

// Parse builds an owned tree from an HTML fragment. Markup that cannot be
// tree-parsed degrades to a single text node holding the raw input, so Parse
// never fails.
func Parse(fragment string) *Tree {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	if err != nil {
		root.AppendChild(&html.Node{Type: html.TextNode, Data: fragment})
		return &Tree{root: root}
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Tree{root: root}
}

// Root returns the synthetic body element owning the fragment.
func (t *Tree) Root() *html.Node { return t.root }

// Children returns the top-level nodes of the fragment.
func (t *Tree) Children() []*html.Node {
	var out []*html.Node
	for c := t.root.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// HTML serializes the fragment back to a string. Entities come out in the
// serializer's canonical encoding regardless of how the input spelled them.
func (t *Tree) HTML() string {
	var buf bytes.Buffer
	for c := t.root.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// Text returns the concatenated text content of the whole fragment.
func (t *Tree) Text() string { return Text(t.root) }

// OuterHTML serializes a single node including its own tags.
func OuterHTML(n *html.Node) string {
	var buf bytes.Buffer
	_ = html.Render(&buf, n)
	return buf.String()
}

// InnerHTML serializes a node's children only.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// blockTags are elements whose boundaries separate words; inline elements
// like span and a do not.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "header": true,
	"aside": true, "main": true, "ul": true, "ol": true, "li": true,
	"table": true, "tr": true, "td": true, "th": true, "blockquote": true,
	"br": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Text returns the concatenated text content of a node, with block element
// boundaries treated as whitespace and runs of whitespace collapsed.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteString(" ")
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets or replaces an attribute value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr drops an attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// HasClass reports whether an element carries the given class token.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends a class token if not already present.
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	cur := Attr(n, "class")
	if cur == "" {
		SetAttr(n, "class", class)
		return
	}
	SetAttr(n, "class", cur+" "+class)
}

// RemoveClass drops a class token, removing the attribute when it empties.
func RemoveClass(n *html.Node, class string) {
	fields := strings.Fields(Attr(n, "class"))
	out := fields[:0]
	for _, c := range fields {
		if c != class {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(out, " "))
}

// IsElement reports whether n is an element with one of the given tag names.
func IsElement(n *html.Node, names ...string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, name := range names {
		if n.Data == name {
			return true
		}
	}
	return false
}

// HeadingLevel returns 1..6 for h1..h6 elements and 0 otherwise.
func HeadingLevel(n *html.Node) int {
	if n.Type != html.ElementNode {
		return 0
	}
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// FindAll collects every node under root (root excluded) matching pred, in
// document order.
func FindAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if pred(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// FindFirst returns the first node under root matching pred, or nil.
func FindFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	for _, n := range FindAll(root, pred) {
		return n
	}
	return nil
}

// Detach removes a node from its parent. Safe on already-detached nodes.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// NewElement creates a detached element node.
func NewElement(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

// NewText creates a detached text node.
func NewText(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
