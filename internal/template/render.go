package template

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/publicsuffix"

	"resume-composer/internal/markup"
	"resume-composer/internal/model"
	"resume-composer/internal/section"
)

// HeaderMarker is the skeleton comment replaced by the rendered header block.
const HeaderMarker = "<!-- header -->"

var placeholderRe = regexp.MustCompile(`\{\{[a-z0-9_-]+\}\}`)

// Render applies a canonical section model to a template definition and
// returns the final document. Empty sections leave their skeleton container
// marked for removal, and a defensive final pass strips every unresolved
// placeholder along with its container, so the output carries zero
// placeholder tokens and zero content-less containers. Rendering is
// deterministic and idempotent: already-injected icons are never duplicated.
func Render(secs []model.Section, header model.HeaderInfo, def *Definition) model.RenderedDocument {
	byID := make(map[string]model.Section, len(secs))
	for _, s := range secs {
		byID[s.ID] = s
	}

	out := strings.Replace(def.Skeleton, HeaderMarker, headerBlock(header), 1)

	for _, id := range configIDs(def, model.StandardIDs) {
		token := "{{" + id + "}}"
		if !strings.Contains(out, token) {
			continue
		}
		sec, ok := byID[id]
		if !ok || !sec.Visible || section.IsEmpty(sec.Content, sec.Title) {
			out = strings.ReplaceAll(out, token, "")
			continue
		}
		out = strings.ReplaceAll(out, token, renderSection(sec, def.SectionConfig[id]))
	}

	return model.RenderedDocument{
		TemplateID: def.ID,
		HTML:       cleanup(out),
		Styles:     def.Styles,
	}
}

// renderSection injects the per-config icon and display styling into a
// section's content. Injection is guarded so re-rendering already-rendered
// content is a no-op.
func renderSection(sec model.Section, cfg SectionConfig) string {
	t := markup.Parse(sec.Content)

	if cfg.Icon != "" {
		title := markup.FindFirst(t.Root(), func(n *html.Node) bool {
			return markup.HeadingLevel(n) > 0
		})
		if title != nil && !hasIcon(title) {
			icon := markup.NewElement("span")
			markup.AddClass(icon, section.IconClass)
			markup.SetAttr(icon, "aria-hidden", "true")
			icon.AppendChild(markup.NewText(cfg.Icon))
			if title.FirstChild != nil {
				title.InsertBefore(icon, title.FirstChild)
				title.InsertBefore(markup.NewText(" "), title.FirstChild.NextSibling)
			} else {
				title.AppendChild(icon)
			}
		}
	}

	if cfg.DisplayStyle != "" {
		for _, list := range markup.FindAll(t.Root(), func(n *html.Node) bool {
			return markup.IsElement(n, "ul", "ol")
		}) {
			markup.AddClass(list, cfg.DisplayStyle)
		}
	}

	return t.HTML()
}

// hasIcon reports whether a heading already carries an injected icon span.
func hasIcon(n *html.Node) bool {
	return markup.FindFirst(n, func(c *html.Node) bool {
		return c.Type == html.ElementNode && markup.HasClass(c, section.IconClass)
	}) != nil
}

// headerBlock builds the header markup from extracted contact fields,
// including only non-blank values with no leading or trailing separators.
func headerBlock(h model.HeaderInfo) string {
	wrap := markup.NewElement("div")
	markup.AddClass(wrap, "header-content")

	name := markup.NewElement("h1")
	markup.AddClass(name, "resume-name")
	name.AppendChild(markup.NewText(h.Name))
	wrap.AppendChild(name)

	if h.Title != "" {
		title := markup.NewElement("p")
		markup.AddClass(title, "resume-headline")
		title.AppendChild(markup.NewText(h.Title))
		wrap.AppendChild(title)
	}

	type item struct {
		class string
		text  string
		href  string
	}
	var items []item
	if h.Phone != "" {
		items = append(items, item{"phone", h.Phone, ""})
	}
	if h.Email != "" {
		items = append(items, item{"email", h.Email, "mailto:" + h.Email})
	}
	if h.LinkedIn != "" {
		items = append(items, item{"linkedin", linkLabel(h.LinkedIn), linkHref(h.LinkedIn)})
	}
	if h.Portfolio != "" {
		items = append(items, item{"portfolio", linkLabel(h.Portfolio), linkHref(h.Portfolio)})
	}

	if len(items) > 0 {
		line := markup.NewElement("div")
		markup.AddClass(line, "contact-line")
		for i, it := range items {
			if i > 0 {
				sep := markup.NewElement("span")
				markup.AddClass(sep, "contact-sep")
				sep.AppendChild(markup.NewText("•"))
				line.AppendChild(sep)
			}
			span := markup.NewElement("span")
			markup.AddClass(span, "contact-item")
			markup.AddClass(span, it.class)
			if it.href != "" {
				a := markup.NewElement("a")
				markup.SetAttr(a, "href", it.href)
				a.AppendChild(markup.NewText(it.text))
				span.AppendChild(a)
			} else {
				span.AppendChild(markup.NewText(it.text))
			}
			line.AppendChild(span)
		}
		wrap.AppendChild(line)
	}

	if h.Address != "" {
		addr := markup.NewElement("p")
		markup.AddClass(addr, "contact-address")
		for i, ln := range strings.Split(h.Address, "\n") {
			if i > 0 {
				addr.AppendChild(markup.NewElement("br"))
			}
			addr.AppendChild(markup.NewText(ln))
		}
		wrap.AppendChild(addr)
	}

	return markup.InnerHTML(wrap)
}

// linkHref normalizes a link-ish value to something navigable; free-text
// clauses fall back to no link at all.
func linkHref(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if strings.Contains(raw, " ") {
		return ""
	}
	if strings.Contains(raw, ".") {
		return "https://" + raw
	}
	return ""
}

// linkLabel produces a tidy display label for a URL-ish value: the eTLD+1
// plus path when parseable, the raw text otherwise.
func linkLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		if strings.Contains(candidate, " ") || !strings.Contains(candidate, ".") {
			return raw
		}
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return raw
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		host = etld
	}
	host = strings.TrimPrefix(host, "www.")
	if p := strings.TrimSuffix(parsed.Path, "/"); p != "" {
		return host + p
	}
	return host
}

// cleanup is the defensive final pass: wipe unresolved placeholder tokens,
// then drop any section container left without rendered content.
func cleanup(doc string) string {
	t := markup.Parse(doc)

	for _, n := range markup.FindAll(t.Root(), func(n *html.Node) bool {
		return n.Type == html.TextNode && placeholderRe.MatchString(n.Data)
	}) {
		n.Data = placeholderRe.ReplaceAllString(n.Data, "")
		parent := n.Parent
		if parent != nil && parent.Type == html.ElementNode && strings.TrimSpace(markup.Text(parent)) == "" {
			markup.Detach(parent)
		}
	}

	for _, c := range markup.FindAll(t.Root(), func(n *html.Node) bool {
		return n.Type == html.ElementNode && markup.Attr(n, "data-section") != ""
	}) {
		if strings.TrimSpace(markup.Text(c)) == "" {
			markup.Detach(c)
		}
	}

	return t.HTML()
}
