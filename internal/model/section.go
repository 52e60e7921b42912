package model

import "strings"

// Standard section identifiers. Every résumé document, once canonicalized,
// contains exactly one section per id, plus any custom-slug sections the
// author added.
const (
	IDHeader         = "header"
	IDSummary        = "summary"
	IDExperience     = "experience"
	IDEducation      = "education"
	IDSkills         = "skills"
	IDLanguages      = "languages"
	IDCertifications = "certifications"
	IDProjects       = "projects"
	IDAwards         = "awards"
	IDVolunteering   = "volunteering"
	IDPublications   = "publications"
	IDInterests      = "interests"
	IDReferences     = "references"
	IDAdditional     = "additional"
)

// StandardIDs is the closed set of canonical section ids, in canonical
// document order. Classification tie-breaks and sorting both depend on this
// order, so it must never be reordered casually.
var StandardIDs = []string{
	IDHeader,
	IDSummary,
	IDExperience,
	IDEducation,
	IDSkills,
	IDLanguages,
	IDCertifications,
	IDProjects,
	IDAwards,
	IDVolunteering,
	IDPublications,
	IDInterests,
	IDReferences,
	IDAdditional,
}

// aliasIDs maps legacy and alternate section identifiers many-to-one onto the
// standard set. The mapping is total and deterministic: each alias has exactly
// one target.
var aliasIDs = map[string]string{
	"contact":             IDHeader,
	"contact-info":        IDHeader,
	"personal-info":       IDHeader,
	"profile-header":      IDHeader,
	"profile":             IDSummary,
	"about":               IDSummary,
	"about-me":            IDSummary,
	"objective":           IDSummary,
	"professional-summary": IDSummary,
	"work":                IDExperience,
	"work-experience":     IDExperience,
	"work_experience":     IDExperience,
	"employment":          IDExperience,
	"employment-history":  IDExperience,
	"studies":             IDEducation,
	"academic":            IDEducation,
	"formation":           IDEducation,
	"competencies":        IDSkills,
	"technical-skills":    IDSkills,
	"core-skills":         IDSkills,
	"langs":               IDLanguages,
	"language-skills":     IDLanguages,
	"certs":               IDCertifications,
	"certificates":        IDCertifications,
	"licenses":            IDCertifications,
	"portfolio-projects":  IDProjects,
	"personal-projects":   IDProjects,
	"honors":              IDAwards,
	"achievements":        IDAwards,
	"volunteer":           IDVolunteering,
	"volunteer-work":      IDVolunteering,
	"community":           IDVolunteering,
	"papers":              IDPublications,
	"hobbies":             IDInterests,
	"personal-interests":  IDInterests,
	"referees":            IDReferences,
	"misc":                IDAdditional,
	"other":               IDAdditional,
	"additional-info":     IDAdditional,
}

var standardIDSet = func() map[string]bool {
	m := make(map[string]bool, len(StandardIDs))
	for _, id := range StandardIDs {
		m[id] = true
	}
	return m
}()

// IsStandardID reports whether id belongs to the closed standard set.
func IsStandardID(id string) bool { return standardIDSet[id] }

// NormalizeID maps a legacy or alternate identifier to its standard form.
// Standard ids and unknown ids pass through unchanged, so re-normalizing an
// already-normalized id is a no-op.
func NormalizeID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if standardIDSet[id] {
		return id
	}
	if std, ok := aliasIDs[id]; ok {
		return std
	}
	return id
}

// AliasIDs returns the alias table keys. Exposed for ordering and tests; the
// table itself stays private so it cannot be mutated at runtime.
func AliasIDs() []string {
	out := make([]string, 0, len(aliasIDs))
	for k := range aliasIDs {
		out = append(out, k)
	}
	return out
}

// SectionKind is the semantic kind inferred from a section's title. It is
// independent of the section id: a custom-slug section whose title says
// "Key Skills" still gets KindSkills and is laid out like a skills list.
type SectionKind string

const KindCustom SectionKind = "custom"

// Section is one typed, ordered block of a résumé document. Content is an
// HTML fragment. Empty is derived and must be recomputed from Content and
// Title after every mutation; it is never authoritative on its own.
type Section struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Kind    SectionKind `json:"kind"`
	Order   int         `json:"order"`
	Visible bool        `json:"visible"`
	Empty   bool        `json:"isEmpty"`
}

// HeaderInfo is the structured view of the header section. It is derived from
// the header section's content on every extraction and never persisted
// separately. Empty string means the field was not found.
type HeaderInfo struct {
	Name      string `json:"name"`
	Title     string `json:"title,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Address   string `json:"address,omitempty"`
}

// DefaultName is used when the header section carries no heading at all.
const DefaultName = "Full Name"

// RenderedDocument is the final presentational output of a render call. It is
// produced fresh on every call and never mutated in place.
type RenderedDocument struct {
	TemplateID string `json:"templateId"`
	HTML       string `json:"html"`
	Styles     string `json:"styles"`
}
