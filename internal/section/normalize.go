package section

import (
	"golang.org/x/net/html"

	"resume-composer/internal/markup"
	"resume-composer/internal/model"
)

// Marker classes recognized in input markup. TitleClass flags a heading as a
// section's primary title; the contact classes pre-tag header fields.
const (
	TitleClass     = "section-title"
	PhoneClass     = "phone"
	EmailClass     = "email"
	LinkedInClass  = "linkedin"
	SocialClass    = "social"
	LinkClass      = "link"
	PortfolioClass = "portfolio"
	AddressClass   = "address"
)

// Normalize canonicalizes raw markup before parsing: entities are re-encoded
// canonically by the round-trip through the tree, legacy section ids are
// rewritten to standard form, and each section container's primary heading
// carries the title marker exactly once, never the container itself.
// Upstream content may already be partially normalized, so every step is a
// no-op on already-canonical input.
func Normalize(raw string) string {
	t := markup.Parse(raw)

	for _, n := range markup.FindAll(t.Root(), func(n *html.Node) bool {
		return n.Type == html.ElementNode && markup.Attr(n, "id") != ""
	}) {
		id := markup.Attr(n, "id")
		if norm := model.NormalizeID(id); norm != id {
			markup.SetAttr(n, "id", norm)
		}
	}

	for _, c := range findContainers(t.Root()) {
		markup.RemoveClass(c, TitleClass)
		headings := markup.FindAll(c, func(n *html.Node) bool {
			return markup.HeadingLevel(n) > 0
		})
		for i, h := range headings {
			if i == 0 {
				markup.AddClass(h, TitleClass)
			} else {
				markup.RemoveClass(h, TitleClass)
			}
		}
	}

	return t.HTML()
}

// isContainer reports whether an element is a section container: a block
// element whose id maps to the standard set, or any <section> carrying an id.
func isContainer(n *html.Node) bool {
	if !markup.IsElement(n, "div", "section", "article") {
		return false
	}
	id := markup.Attr(n, "id")
	if id == "" {
		return false
	}
	if n.Data == "section" {
		return true
	}
	return model.IsStandardID(model.NormalizeID(id))
}

// findContainers collects top-most section containers in document order;
// containers nested inside another container are treated as content.
func findContainers(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if isContainer(c) {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(root)
	return out
}
