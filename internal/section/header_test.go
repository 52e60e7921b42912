package section

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-composer/internal/model"
)

func TestExtractHeaderMinimal(t *testing.T) {
	got := ExtractHeader(`<h1>Jane Smith</h1><p>514-555-1234 jane@email.com</p>`)

	assert.Equal(t, "Jane Smith", got.Name)
	assert.Equal(t, "", got.Title)
	assert.Equal(t, "514-555-1234", got.Phone)
	assert.Equal(t, "jane@email.com", got.Email)
	assert.Equal(t, "", got.LinkedIn)
	assert.Equal(t, "", got.Portfolio)
	assert.Equal(t, "", got.Address)
}

func TestExtractHeaderNoHeadingDefaultsName(t *testing.T) {
	got := ExtractHeader(`<p>just some text</p>`)
	assert.Equal(t, model.DefaultName, got.Name)
}

func TestExtractHeaderIgnoresSectionLabelHeadings(t *testing.T) {
	// a synthesized header section's own heading is not a person's name
	got := ExtractHeader(`<h2 class="section-title">Contact</h2>`)
	assert.Equal(t, model.DefaultName, got.Name)

	got = ExtractHeader(`<h2 class="section-title">Coordonnées</h2>`)
	assert.Equal(t, model.DefaultName, got.Name)

	// but a label heading does not hide a real name that follows
	got = ExtractHeader(`<h2 class="section-title">Contact</h2><h1>Jane Smith</h1><p>jane@email.com</p>`)
	assert.Equal(t, "Jane Smith", got.Name)
}

func TestExtractHeaderTitle(t *testing.T) {
	got := ExtractHeader(`<h1>Jane Smith</h1><p>Product Designer</p><p>jane@email.com</p>`)
	assert.Equal(t, "Product Designer", got.Title)

	// a contact line right after the name is never mistaken for a title,
	// including non-North-American phone formats
	got = ExtractHeader(`<h1>Jean Dupont</h1><p>+33 6 12 34 56 78</p>`)
	assert.Equal(t, "", got.Title)
	assert.Equal(t, "+33 6 12 34 56 78", got.Phone)
}

func TestExtractHeaderTitleFallsBackToSubheading(t *testing.T) {
	got := ExtractHeader(`<h1>Jane Smith</h1><p>jane@email.com</p><h2>Senior Backend Engineer</h2>`)
	assert.Equal(t, "Senior Backend Engineer", got.Title)
}

func TestExtractHeaderMarkersWin(t *testing.T) {
	got := ExtractHeader(`<h1>Jean Dupont</h1>` +
		`<p class="phone">+33 6 12 34 56 78</p>` +
		`<p class="email">jean@exemple.fr</p>` +
		`<p class="linkedin">linkedin.com/in/jdupont</p>` +
		`<p class="portfolio">jdupont.dev</p>` +
		`<p class="address">12 rue Fleurie<br>75002 Paris</p>`)

	assert.Equal(t, "Jean Dupont", got.Name)
	assert.Equal(t, "+33 6 12 34 56 78", got.Phone)
	assert.Equal(t, "jean@exemple.fr", got.Email)
	assert.Equal(t, "linkedin.com/in/jdupont", got.LinkedIn)
	assert.Equal(t, "jdupont.dev", got.Portfolio)
	assert.Equal(t, "12 rue Fleurie\n75002 Paris", got.Address)
}

func TestExtractHeaderKeywordLinks(t *testing.T) {
	got := ExtractHeader(`<h1>Jane Smith</h1>` +
		`<p>LinkedIn: linkedin.com/in/jane</p>` +
		`<p>Portfolio: https://jane.dev</p>`)
	assert.Equal(t, "linkedin.com/in/jane", got.LinkedIn)
	assert.Equal(t, "https://jane.dev", got.Portfolio)
}

func TestExtractHeaderKeywordClauseWithoutURL(t *testing.T) {
	got := ExtractHeader(`<h1>Jane Smith</h1><p>ask me for my portfolio, references available</p>`)
	assert.Equal(t, "ask me for my portfolio", got.Portfolio)
}

func TestExtractHeaderAddressHeuristics(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			"canadian postal code",
			`<h1>Jane</h1><p>123 Main St, Montreal, QC H3A 1B2</p>`,
			"123 Main St, Montreal, QC H3A 1B2",
		},
		{
			"us zip",
			`<h1>Jane</h1><p>45 Elm Street, Boston, MA 02101</p>`,
			"45 Elm Street, Boston, MA 02101",
		},
		{
			"apartment indicator",
			`<h1>Jane</h1><p>Apt 4, 9 Oak Lane</p>`,
			"Apt 4, 9 Oak Lane",
		},
		{
			"contact text never wins",
			`<h1>Jane</h1><p>514-555-1234, Montreal, QC</p>`,
			"",
		},
		{
			"plain prose is not an address",
			`<h1>Jane</h1><p>Engineer who likes long walks</p>`,
			"",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ExtractHeader(c.content).Address)
		})
	}
}

func TestExtractHeaderNeverPanicsOnGarbage(t *testing.T) {
	for _, in := range []string{
		"",
		"<<<<>>>>",
		`<h1></h1><p></p>`,
		`<table><td>514</td></table>`,
	} {
		assert.NotPanics(t, func() { ExtractHeader(in) }, "input %q", in)
	}
}
