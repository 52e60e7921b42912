package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/internal/model"
	"resume-composer/internal/section"
)

func sampleSections() []model.Section {
	secs := []model.Section{
		{ID: model.IDSummary, Title: "Summary", Content: "<p>Backend engineer with ten years of experience.</p>", Visible: true},
		{ID: model.IDExperience, Title: "Experience", Content: "<h2>Experience</h2><p>Led the ingestion rewrite at Acme.</p>", Visible: true},
		{ID: model.IDSkills, Title: "Skills", Content: "<h2>Skills</h2><ul><li>Go tooling</li><li>PostgreSQL</li></ul>", Visible: true},
	}
	return section.EnsureAllStandard(secs, "en")
}

func sampleHeader() model.HeaderInfo {
	return model.HeaderInfo{
		Name:     "Avery Martin",
		Title:    "Senior Backend Engineer",
		Phone:    "514-555-0133",
		Email:    "avery@example.com",
		LinkedIn: "linkedin.com/in/avery",
		Address:  "12 Elm Street\nMontreal, QC",
	}
}

func TestRenderLeavesNoPlaceholders(t *testing.T) {
	secs := sampleSections()
	header := sampleHeader()
	for _, def := range Catalog().List() {
		t.Run(def.ID, func(t *testing.T) {
			full := Render(secs, header, def)
			assert.NotContains(t, full.HTML, "{{")
			assert.NotContains(t, full.HTML, HeaderMarker)

			bare := Render(nil, model.HeaderInfo{Name: model.DefaultName}, def)
			assert.NotContains(t, bare.HTML, "{{")
		})
	}
}

func TestRenderRemovesEmptySectionContainers(t *testing.T) {
	got := Render(sampleSections(), sampleHeader(), Catalog().Get("classic"))

	assert.Contains(t, got.HTML, `data-section="experience"`)
	assert.Contains(t, got.HTML, `data-section="skills"`)
	// awards was synthesized heading-only, so its container is gone
	assert.NotContains(t, got.HTML, `data-section="awards"`)
	assert.NotContains(t, got.HTML, `data-section="references"`)
}

func TestRenderExcludesInvisibleSections(t *testing.T) {
	secs := sampleSections()
	for i := range secs {
		if secs[i].ID == model.IDExperience {
			secs[i].Visible = false
		}
	}
	got := Render(secs, sampleHeader(), Catalog().Get("classic"))
	assert.NotContains(t, got.HTML, "ingestion rewrite")
	assert.NotContains(t, got.HTML, `data-section="experience"`)
	assert.Contains(t, got.HTML, "PostgreSQL")
}

func TestRenderHeaderBlock(t *testing.T) {
	got := Render(sampleSections(), sampleHeader(), Catalog().Get("classic"))

	assert.Contains(t, got.HTML, `class="resume-name"`)
	assert.Contains(t, got.HTML, "Avery Martin")
	assert.Contains(t, got.HTML, "Senior Backend Engineer")
	assert.Contains(t, got.HTML, `href="mailto:avery@example.com"`)
	assert.Contains(t, got.HTML, `href="https://linkedin.com/in/avery"`)

	// separators only between items, never leading or trailing
	assert.Equal(t, 2, strings.Count(got.HTML, `contact-sep`))

	assert.Contains(t, got.HTML, `class="contact-address"`)
	assert.Contains(t, got.HTML, "12 Elm Street")
	assert.Contains(t, got.HTML, "Montreal, QC")
}

func TestRenderHeaderBlockSkipsBlankFields(t *testing.T) {
	got := Render(nil, model.HeaderInfo{Name: "Jane Smith"}, Catalog().Get("classic"))
	assert.Contains(t, got.HTML, "Jane Smith")
	assert.NotContains(t, got.HTML, "contact-sep")
	assert.NotContains(t, got.HTML, "contact-address")
	assert.NotContains(t, got.HTML, "resume-headline")
}

func TestRenderDeterministic(t *testing.T) {
	secs := sampleSections()
	header := sampleHeader()
	for _, def := range Catalog().List() {
		first := Render(secs, header, def)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Render(secs, header, def), "template %s", def.ID)
		}
	}
}

func TestRenderUnknownTemplateMatchesDefault(t *testing.T) {
	secs := sampleSections()
	header := sampleHeader()
	fallback := Render(secs, header, Catalog().Get("no-such-skin"))
	classic := Render(secs, header, Catalog().Get(DefaultTemplateID))
	assert.Equal(t, classic, fallback)
}

func TestRenderInjectsIconOnce(t *testing.T) {
	def := &Definition{
		ID:          "icons",
		DisplayName: "Icons",
		Skeleton:    `<div>` + HeaderMarker + `<section id="experience" data-section="experience">{{experience}}</section></div>`,
		SectionConfig: map[string]SectionConfig{
			model.IDExperience: {Location: LocationMain, Icon: "⚒"},
		},
		Styles: ".x{}",
	}
	sec := model.Section{
		ID: model.IDExperience, Title: "Experience", Visible: true,
		Content: "<h2>Experience</h2><p>Did things properly.</p>",
	}
	header := model.HeaderInfo{Name: "Jane"}

	first := Render([]model.Section{sec}, header, def)
	require.Equal(t, 1, strings.Count(first.HTML, section.IconClass))

	// re-rendering content that already carries the icon must not add another
	sec.Content = `<h2><span class="section-icon" aria-hidden="true">⚒</span> Experience</h2><p>Did things properly.</p>`
	second := Render([]model.Section{sec}, header, def)
	assert.Equal(t, 1, strings.Count(second.HTML, section.IconClass))
}

func TestRenderAppliesDisplayStyle(t *testing.T) {
	got := Render(sampleSections(), sampleHeader(), Catalog().Get("classic"))
	// classic configures skills lists as columns
	assert.Contains(t, got.HTML, `<ul class="columns">`)
}

func TestRenderSidebarCarriesIcons(t *testing.T) {
	got := Render(sampleSections(), sampleHeader(), Catalog().Get("sidebar"))
	assert.Contains(t, got.HTML, section.IconClass)
	assert.Contains(t, got.HTML, "resume-aside")
}

func TestLinkHref(t *testing.T) {
	cases := map[string]string{
		"https://jane.dev":         "https://jane.dev",
		"jane.dev":                 "https://jane.dev",
		"linkedin.com/in/avery":    "https://linkedin.com/in/avery",
		"ask me for my portfolio":  "",
		"nodots":                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, linkHref(in), "input %q", in)
	}
}

func TestLinkLabel(t *testing.T) {
	cases := map[string]string{
		"https://www.linkedin.com/in/jane/": "linkedin.com/in/jane",
		"jane.dev":                          "jane.dev",
		"https://jane.dev":                  "jane.dev",
		"ask me for my portfolio":           "ask me for my portfolio",
	}
	for in, want := range cases {
		assert.Equal(t, want, linkLabel(in), "input %q", in)
	}
}

func TestCleanup(t *testing.T) {
	in := `<section data-section="x">{{x}}</section><p>before {{y}} after</p>`
	got := cleanup(in)
	assert.NotContains(t, got, "{{")
	assert.NotContains(t, got, "data-section")
	assert.Contains(t, got, "before  after")
}
