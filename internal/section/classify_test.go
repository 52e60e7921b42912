package section

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-composer/internal/model"
)

func TestClassifyEnglish(t *testing.T) {
	cases := map[string]string{
		"Work Experience":      model.IDExperience,
		"Employment History":   model.IDExperience,
		"Professional Summary": model.IDSummary,
		"About Me":             model.IDSummary,
		"Education":            model.IDEducation,
		"Key Skills":           model.IDSkills,
		"Technologies":         model.IDSkills,
		"Languages":            model.IDLanguages,
		"Certifications":       model.IDCertifications,
		"Personal Projects":    model.IDProjects,
		"Honors & Awards":      model.IDAwards,
		"Volunteer Work":       model.IDVolunteering,
		"Publications":         model.IDPublications,
		"Hobbies":              model.IDInterests,
		"References":           model.IDReferences,
		"Additional Info":      model.IDAdditional,
		"Contact":              model.IDHeader,
	}
	for heading, want := range cases {
		got, ok := Classify(heading, "en")
		assert.True(t, ok, "heading %q", heading)
		assert.Equal(t, want, got, "heading %q", heading)
	}
}

func TestClassifyFrench(t *testing.T) {
	cases := map[string]string{
		"Expérience professionnelle": model.IDExperience,
		"Formation":                  model.IDEducation,
		"Compétences":                model.IDSkills,
		"Langues":                    model.IDLanguages,
		"Centres d'intérêt":          model.IDInterests,
		"Bénévolat":                  model.IDVolunteering,
		"Coordonnées":                model.IDHeader,
	}
	for heading, want := range cases {
		got, ok := Classify(heading, "fr")
		assert.True(t, ok, "heading %q", heading)
		assert.Equal(t, want, got, "heading %q", heading)
	}
}

func TestClassifyTieBreakFollowsCanonicalOrder(t *testing.T) {
	// "Summary of Experience" matches both summary and experience keywords;
	// summary comes first in canonical order and wins.
	got, ok := Classify("Summary of Experience", "en")
	assert.True(t, ok)
	assert.Equal(t, model.IDSummary, got)
}

func TestClassifyMissFallsToSlug(t *testing.T) {
	_, ok := Classify("Mes Loisirs", "fr")
	assert.False(t, ok)
	assert.Equal(t, "mes-loisirs", SlugID("Mes Loisirs"))
}

func TestClassifyBlankAndUnknown(t *testing.T) {
	_, ok := Classify("", "en")
	assert.False(t, ok)
	_, ok = Classify("   ", "en")
	assert.False(t, ok)
	_, ok = Classify("Zebra Facts", "en")
	assert.False(t, ok)
}

func TestClassifyLanguageVariants(t *testing.T) {
	// Region suffixes are stripped; unknown languages fall back to English.
	got, ok := Classify("Formation", "fr-CA")
	assert.True(t, ok)
	assert.Equal(t, model.IDEducation, got)

	got, ok = Classify("Skills", "de")
	assert.True(t, ok)
	assert.Equal(t, model.IDSkills, got)
}

func TestSlugID(t *testing.T) {
	cases := map[string]string{
		"Mes Loisirs":       "mes-loisirs",
		"  Hello  World! ":  "hello-world",
		"Côté Créatif":      "côté-créatif",
		"--- ":              "",
		"What I'm Good At?": "what-i-m-good-at",
	}
	for in, want := range cases {
		assert.Equal(t, want, SlugID(in), "input %q", in)
	}
}

func TestKindFor(t *testing.T) {
	assert.Equal(t, model.SectionKind(model.IDSkills), KindFor("Key Skills", "en"))
	assert.Equal(t, model.SectionKind(model.IDExperience), KindFor("Parcours professionnel", "fr"))
	assert.Equal(t, model.KindCustom, KindFor("Mes Loisirs", "fr"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Experience", DisplayName(model.IDExperience, "en"))
	assert.Equal(t, "Formation", DisplayName(model.IDEducation, "fr"))
	assert.Equal(t, "Skills", DisplayName(model.IDSkills, "pt"))
	assert.Equal(t, "Mes Loisirs", DisplayName("mes-loisirs", "en"))
}
