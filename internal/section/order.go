package section

import (
	"sort"
	"strings"

	"resume-composer/internal/markup"
	"resume-composer/internal/model"
)

// orderIndex positions every standard id — and every legacy alias, mapped to
// its standard target — in the canonical document order. Built once, read-only.
var orderIndex = func() map[string]int {
	m := make(map[string]int, len(model.StandardIDs))
	for i, id := range model.StandardIDs {
		m[id] = i
	}
	for _, alias := range model.AliasIDs() {
		m[alias] = m[model.NormalizeID(alias)]
	}
	return m
}()

// Order returns a new slice with sections in canonical order: ids present in
// the order list sort by their index, everything else comes after, sorted
// alphabetically by title. The sort is stable and Order fields are reassigned
// to the final positions.
func Order(secs []model.Section) []model.Section {
	out := make([]model.Section, len(secs))
	copy(out, secs)
	sort.SliceStable(out, func(i, j int) bool {
		oi, iok := orderIndex[out[i].ID]
		oj, jok := orderIndex[out[j].ID]
		switch {
		case iok && jok:
			return oi < oj
		case iok:
			return true
		case jok:
			return false
		default:
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		}
	})
	for i := range out {
		out[i].Order = i
	}
	return out
}

// EnsureAllStandard inserts a synthesized empty section (heading only) for
// every standard id missing from the input, then orders the result. After
// this step the list contains exactly one section per standard id.
func EnsureAllStandard(secs []model.Section, lang string) []model.Section {
	present := make(map[string]bool, len(secs))
	for _, s := range secs {
		present[s.ID] = true
	}
	out := make([]model.Section, len(secs), len(secs)+len(model.StandardIDs))
	copy(out, secs)
	for _, id := range model.StandardIDs {
		if present[id] {
			continue
		}
		title := DisplayName(id, lang)
		content := synthesizedHeading(title)
		out = append(out, model.Section{
			ID:      id,
			Title:   title,
			Content: content,
			Kind:    model.SectionKind(id),
			Visible: true,
			Empty:   IsEmpty(content, title),
		})
	}
	return Order(out)
}

// synthesizedHeading builds the heading-only content of a synthesized
// section, marker included, through the arena so escaping stays canonical.
func synthesizedHeading(title string) string {
	h := markup.NewElement("h2")
	markup.AddClass(h, TitleClass)
	h.AppendChild(markup.NewText(title))
	return markup.OuterHTML(h)
}
