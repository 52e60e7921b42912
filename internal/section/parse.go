package section

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"resume-composer/internal/markup"
	"resume-composer/internal/model"
)

// Paragraph-grouping boundary thresholds. A short heading-like paragraph
// (few words, short, no sentence period) is treated as a section boundary.
// These are tunable constants inherited from the original heuristic, not a
// guaranteed-correct classifier: changing them shifts documents between the
// grouping and whole-document strategies.
const (
	boundaryMaxWords = 5
	boundaryMaxChars = 50
	groupingMinParas = 4
)

// Parse extracts an ordered list of typed sections from a normalized
// document. Strategies run in order and the first one producing at least one
// section wins: explicit containers, marked titles, heading cascade,
// paragraph grouping, whole-document fallback. If nothing fires at all, a
// single empty summary section is synthesized. The result is not yet sorted;
// callers run Order afterward.
func Parse(normalized, lang string) []model.Section {
	t := markup.Parse(normalized)

	strategies := []func(*markup.Tree, string) []model.Section{
		parseContainers,
		parseMarkedTitles,
		parseHeadingCascade,
		parseParagraphGroups,
		parseWholeDocument,
	}
	for _, strat := range strategies {
		if secs := strat(t, lang); len(secs) > 0 {
			return finalize(secs, lang)
		}
	}

	return finalize([]model.Section{{
		ID:      model.IDSummary,
		Title:   DisplayName(model.IDSummary, lang),
		Content: normalized,
	}}, lang)
}

// finalize assigns kinds, recomputes emptiness, enforces id uniqueness and
// marks everything visible. Ordering is left to the caller.
func finalize(secs []model.Section, lang string) []model.Section {
	seen := map[string]int{}
	for i := range secs {
		s := &secs[i]
		if s.ID == "" {
			if id, ok := Classify(s.Title, lang); ok {
				s.ID = id
			} else if slug := SlugID(s.Title); slug != "" {
				s.ID = slug
			} else {
				s.ID = fmt.Sprintf("section-%d", i+1)
			}
		}
		seen[s.ID]++
		if n := seen[s.ID]; n > 1 {
			s.ID = fmt.Sprintf("%s-%d", s.ID, n)
		}
		s.Kind = KindFor(s.Title, lang)
		s.Visible = true
		s.Empty = IsEmpty(s.Content, s.Title)
	}
	return secs
}

// parseContainers handles documents whose sections are explicit containers
// carrying an id. The container's inner markup becomes the content verbatim.
func parseContainers(t *markup.Tree, lang string) []model.Section {
	var out []model.Section
	for _, c := range findContainers(t.Root()) {
		id := model.NormalizeID(markup.Attr(c, "id"))
		title := ""
		if h := markup.FindFirst(c, func(n *html.Node) bool { return markup.HeadingLevel(n) > 0 }); h != nil {
			title = strings.TrimSpace(textWithoutIcons(h))
		}
		if title == "" && model.IsStandardID(id) {
			title = DisplayName(id, lang)
		}
		out = append(out, model.Section{ID: id, Title: title, Content: markup.InnerHTML(c)})
	}
	return out
}

// parseMarkedTitles handles documents whose section titles carry the marker
// class without container wrappers. Each section spans from its title to the
// next marked title; anything before the first title is the header.
func parseMarkedTitles(t *markup.Tree, lang string) []model.Section {
	blks := blocks(t.Root())
	var titleIdx []int
	for i, b := range blks {
		if markup.HasClass(b, TitleClass) {
			titleIdx = append(titleIdx, i)
		}
	}
	if len(titleIdx) == 0 {
		return nil
	}

	var out []model.Section
	if titleIdx[0] > 0 {
		out = append(out, model.Section{
			ID:      model.IDHeader,
			Title:   DisplayName(model.IDHeader, lang),
			Content: joinBlocks(blks[:titleIdx[0]]),
		})
	}
	for k, i := range titleIdx {
		end := len(blks)
		if k+1 < len(titleIdx) {
			end = titleIdx[k+1]
		}
		out = append(out, model.Section{
			Title:   strings.TrimSpace(textWithoutIcons(blks[i])),
			Content: joinBlocks(blks[i:end]),
		})
	}
	return out
}

// parseHeadingCascade handles plain heading-structured documents: the first
// heading opens the header section, every later h2/h3 opens a new section,
// and content spans to the next heading of equal or higher level.
func parseHeadingCascade(t *markup.Tree, lang string) []model.Section {
	blks := blocks(t.Root())
	first := -1
	for i, b := range blks {
		if markup.HeadingLevel(b) > 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return nil
	}

	sectionEnd := func(start, level int) int {
		for j := start + 1; j < len(blks); j++ {
			if l := markup.HeadingLevel(blks[j]); l > 0 && l <= level {
				return j
			}
		}
		return len(blks)
	}

	headerEnd := len(blks)
	for j := first + 1; j < len(blks); j++ {
		if l := markup.HeadingLevel(blks[j]); l == 2 || l == 3 {
			headerEnd = j
			break
		}
	}

	out := []model.Section{{
		ID:      model.IDHeader,
		Title:   DisplayName(model.IDHeader, lang),
		Content: joinBlocks(blks[first:headerEnd]),
	}}

	i := headerEnd
	for i < len(blks) {
		level := markup.HeadingLevel(blks[i])
		if level != 2 && level != 3 {
			i++
			continue
		}
		end := sectionEnd(i, level)
		out = append(out, model.Section{
			Title:   strings.TrimSpace(textWithoutIcons(blks[i])),
			Content: joinBlocks(blks[i:end]),
		})
		i = end
	}
	return out
}

// parseParagraphGroups handles flat runs of paragraphs with no headings. A
// paragraph is a boundary when it looks like a bare label (short, few words,
// no sentence period) or fuzzily matches a known section display name.
func parseParagraphGroups(t *markup.Tree, lang string) []model.Section {
	blks := blocks(t.Root())
	paras := 0
	for _, b := range blks {
		if markup.HeadingLevel(b) > 0 {
			return nil
		}
		if markup.IsElement(b, "p") {
			paras++
		}
	}
	if paras < groupingMinParas {
		return nil
	}

	var out []model.Section
	cur := model.Section{ID: model.IDHeader, Title: DisplayName(model.IDHeader, lang)}
	var curBlocks []*html.Node
	flush := func() {
		if len(curBlocks) == 0 {
			return
		}
		cur.Content = joinBlocks(curBlocks)
		out = append(out, cur)
		curBlocks = nil
	}
	for _, b := range blks {
		if markup.IsElement(b, "p") && isBoundaryParagraph(markup.Text(b), lang) {
			flush()
			cur = model.Section{Title: strings.TrimSpace(markup.Text(b))}
		}
		curBlocks = append(curBlocks, b)
	}
	flush()
	return out
}

// isBoundaryParagraph applies the grouping boundary heuristic.
func isBoundaryParagraph(text, lang string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	short := len(strings.Fields(text)) < boundaryMaxWords &&
		len([]rune(text)) < boundaryMaxChars &&
		!strings.Contains(text, ".")
	if short {
		return true
	}
	lower := strings.ToLower(text)
	names, ok := displayNames[normalizeLang(lang)]
	if !ok {
		names = displayNames[defaultLanguage]
	}
	for _, name := range names {
		n := strings.ToLower(name)
		if strings.Contains(lower, n) || strings.Contains(n, lower) {
			return true
		}
	}
	return false
}

// parseWholeDocument is the last resort: the entire document becomes one
// summary section.
func parseWholeDocument(t *markup.Tree, lang string) []model.Section {
	if strings.TrimSpace(t.Text()) == "" {
		return nil
	}
	return []model.Section{{
		ID:      model.IDSummary,
		Title:   DisplayName(model.IDSummary, lang),
		Content: t.HTML(),
	}}
}

// blocks flattens the tree into its block-level elements in document order.
// Content blocks are collected whole; the walk does not descend into them.
func blocks(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if markup.HeadingLevel(c) > 0 || markup.IsElement(c, "p", "ul", "ol", "table", "blockquote", "pre") {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

func joinBlocks(blks []*html.Node) string {
	var b strings.Builder
	for _, n := range blks {
		b.WriteString(markup.OuterHTML(n))
	}
	return b.String()
}
