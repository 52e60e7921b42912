package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefinition(id string) *Definition {
	return &Definition{
		ID:          id,
		DisplayName: "Test " + id,
		Skeleton:    `<div>` + HeaderMarker + `{{summary}}</div>`,
		SectionConfig: map[string]SectionConfig{
			"summary": {Location: LocationMain},
		},
		Styles: ".x{}",
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry("one")
	require.NoError(t, r.Register(testDefinition("one")))
	require.NoError(t, r.Register(testDefinition("two")))

	assert.Equal(t, "two", r.Get("two").ID)
	assert.True(t, r.Has("one"))
	assert.False(t, r.Has("three"))
}

func TestRegistryGetFallsBackSilently(t *testing.T) {
	r := NewRegistry("one")
	require.NoError(t, r.Register(testDefinition("one")))

	assert.Equal(t, "one", r.Get("does-not-exist").ID)
	assert.Equal(t, "one", r.Get("").ID)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry("one")
	require.NoError(t, r.Register(testDefinition("one")))
	assert.Error(t, r.Register(testDefinition("one")))
}

func TestRegistryRejectsInvalidDefinitions(t *testing.T) {
	r := NewRegistry("x")

	assert.Error(t, r.Register(nil))

	def := testDefinition("x")
	def.ID = " "
	assert.Error(t, r.Register(def))

	def = testDefinition("x")
	def.DisplayName = ""
	assert.Error(t, r.Register(def))

	def = testDefinition("x")
	def.Skeleton = ""
	assert.Error(t, r.Register(def))

	def = testDefinition("x")
	def.Skeleton = `<div>{{summary}}</div>` // no header marker
	assert.Error(t, r.Register(def))

	def = testDefinition("x")
	def.Styles = ""
	assert.Error(t, r.Register(def))
}

func TestRegistryListKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry("b")
	require.NoError(t, r.Register(testDefinition("b")))
	require.NoError(t, r.Register(testDefinition("a")))
	require.NoError(t, r.Register(testDefinition("c")))

	var ids []string
	for _, def := range r.List() {
		ids = append(ids, def.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestCatalog(t *testing.T) {
	reg := Catalog()

	var ids []string
	for _, def := range reg.List() {
		ids = append(ids, def.ID)
	}
	assert.Equal(t, []string{"classic", "sidebar", "compact"}, ids)

	assert.Equal(t, DefaultTemplateID, reg.Get("nope").ID)
	assert.False(t, reg.Get("classic").Pro)
	assert.True(t, reg.Get("sidebar").Pro)

	// same instance on every call
	assert.Same(t, reg, Catalog())
}

func TestConfigIDsDeterministic(t *testing.T) {
	def := testDefinition("x")
	def.SectionConfig = map[string]SectionConfig{
		"zzz-custom": {},
		"skills":     {},
		"aaa-custom": {},
		"summary":    {},
	}
	canonical := []string{"summary", "skills"}
	want := []string{"summary", "skills", "aaa-custom", "zzz-custom"}
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, configIDs(def, canonical))
	}
}
