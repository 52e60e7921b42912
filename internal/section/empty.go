package section

import (
	"strings"

	"golang.org/x/net/html"

	"resume-composer/internal/markup"
)

// IconClass marks decorative icon spans injected by templates; their text is
// ignored when deciding whether a section has real content.
const IconClass = "section-icon"

// minMeaningfulRunes is the plain-text length under which a section is
// considered placeholder noise rather than content.
const minMeaningfulRunes = 5

// IsEmpty reports whether a section's content is meaningful. It is a pure
// predicate over (content, title) and must be re-evaluated after every
// content mutation; a stored flag is never trusted across an edit.
func IsEmpty(content, title string) bool {
	if strings.TrimSpace(content) == "" {
		return true
	}

	t := markup.Parse(content)

	if isBareHeading(t.Root(), title) {
		return true
	}

	if len([]rune(strings.TrimSpace(textWithoutIcons(t.Root())))) < minMeaningfulRunes {
		return true
	}

	bearing := markup.FindAll(t.Root(), func(n *html.Node) bool {
		return markup.IsElement(n, "p", "li", "table", "ul", "ol")
	})
	if len(bearing) == 0 {
		return true
	}
	for _, n := range bearing {
		if strings.TrimSpace(textWithoutIcons(n)) != "" {
			return false
		}
	}
	return true
}

// isBareHeading reports whether the fragment is just a heading carrying the
// section title, optionally followed by one empty paragraph.
func isBareHeading(root *html.Node, title string) bool {
	var nodes []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			continue
		}
		nodes = append(nodes, c)
	}
	if len(nodes) == 0 || len(nodes) > 2 {
		return false
	}
	if markup.HeadingLevel(nodes[0]) == 0 {
		return false
	}
	headText := strings.TrimSpace(textWithoutIcons(nodes[0]))
	if title != "" && !strings.EqualFold(headText, strings.TrimSpace(title)) {
		return false
	}
	if len(nodes) == 2 {
		if !markup.IsElement(nodes[1], "p") {
			return false
		}
		if strings.TrimSpace(markup.Text(nodes[1])) != "" {
			return false
		}
	}
	return true
}

// textWithoutIcons is markup.Text with decorative icon spans excluded.
func textWithoutIcons(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && markup.HasClass(n, IconClass) {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
