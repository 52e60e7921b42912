package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		name    string
		content string
		title   string
		want    bool
	}{
		{"blank", "", "Skills", true},
		{"whitespace only", "  \n\t ", "Skills", true},
		{"bare heading", `<h2 class="section-title">Experience</h2>`, "Experience", true},
		{"bare heading case-insensitive", `<h2>EXPERIENCE</h2>`, "Experience", true},
		{"heading plus empty paragraph", `<h2>Experience</h2><p></p>`, "Experience", true},
		{"heading plus blank paragraph", `<h2>Experience</h2><p>   </p>`, "Experience", true},
		{"heading with real content", `<h2>Experience</h2><p>Worked at Acme for five years.</p>`, "Experience", false},
		{"too little text", `<p>abc</p>`, "", true},
		{"icon text does not count", `<h2><span class="section-icon">⚒⚒⚒⚒⚒⚒</span> Experience</h2>`, "Experience", true},
		{"no bearing elements", `<div>some prose outside any list or paragraph</div>`, "Notes", true},
		{"all bearing elements blank", `<ul><li></li><li>  </li></ul>`, "Skills", true},
		{"one bearing element with text", `<ul><li></li><li>PostgreSQL</li></ul>`, "Skills", false},
		{"table counts as bearing", `<h2>References</h2><table><tr><td>Available on request</td></tr></table>`, "References", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsEmpty(c.content, c.title))
		})
	}
}

func TestIsEmptyIsMonotone(t *testing.T) {
	// Removing the text payload from a non-empty section must flip it to
	// empty, never the other way.
	full := `<h2>Skills</h2><ul><li>Go programming</li><li>PostgreSQL tuning</li></ul>`
	drained := `<h2>Skills</h2><ul><li></li><li></li></ul>`
	assert.False(t, IsEmpty(full, "Skills"))
	assert.True(t, IsEmpty(drained, "Skills"))
}

func TestIsEmptyIsPure(t *testing.T) {
	content := `<h2>Experience</h2><p>Shipped the ingestion rewrite.</p>`
	first := IsEmpty(content, "Experience")
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, IsEmpty(content, "Experience"))
	}
}

func TestSynthesizedSectionsAreEmpty(t *testing.T) {
	content := synthesizedHeading("Volunteering")
	assert.True(t, IsEmpty(content, "Volunteering"))
}
