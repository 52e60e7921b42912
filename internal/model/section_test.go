package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIDStandardPassthrough(t *testing.T) {
	for _, id := range StandardIDs {
		assert.Equal(t, id, NormalizeID(id))
	}
}

func TestNormalizeIDAliasesAreTotal(t *testing.T) {
	// Every alias must land on a standard id, with no chains: normalizing
	// twice gives the same result as normalizing once.
	for _, alias := range AliasIDs() {
		std := NormalizeID(alias)
		require.True(t, IsStandardID(std), "alias %q maps to non-standard id %q", alias, std)
		assert.Equal(t, std, NormalizeID(std))
	}
}

func TestNormalizeIDAliasMapping(t *testing.T) {
	cases := map[string]string{
		"work-experience": IDExperience,
		"work_experience": IDExperience,
		"employment":      IDExperience,
		"contact":         IDHeader,
		"about-me":        IDSummary,
		"hobbies":         IDInterests,
		"certs":           IDCertifications,
		"other":           IDAdditional,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeID(in), "alias %q", in)
	}
}

func TestNormalizeIDUnknownPassthrough(t *testing.T) {
	assert.Equal(t, "mes-loisirs", NormalizeID("mes-loisirs"))
	assert.Equal(t, "custom-block", NormalizeID("custom-block"))
}

func TestNormalizeIDCaseAndWhitespace(t *testing.T) {
	assert.Equal(t, IDSkills, NormalizeID("  Skills "))
	assert.Equal(t, IDExperience, NormalizeID("Work-Experience"))
}

func TestStandardIDsOrder(t *testing.T) {
	require.Equal(t, IDHeader, StandardIDs[0])
	require.Equal(t, IDSummary, StandardIDs[1])
	seen := map[string]bool{}
	for _, id := range StandardIDs {
		assert.False(t, seen[id], "duplicate standard id %q", id)
		seen[id] = true
		assert.Equal(t, id, strings.ToLower(id))
	}
}
