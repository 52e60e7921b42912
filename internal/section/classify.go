// Package section implements the canonicalization pipeline for résumé
// documents: normalization, classification, parsing, emptiness, header
// extraction, and ordering. Every function is pure; the only package state is
// read-only lookup tables initialized at startup.
package section

import (
	"regexp"
	"strings"

	"resume-composer/internal/model"
)

// keywordTables maps language code → standard id → ordered keyword list.
// Matching is case-insensitive substring containment, scanned in canonical
// model.StandardIDs order; the first id with any hit wins, which fixes the
// tie-break for ambiguous headings ("Professional Summary" is summary, not
// experience). Read-only after init.
var keywordTables = map[string]map[string][]string{
	"en": {
		model.IDHeader:         {"contact", "personal information", "personal details"},
		model.IDSummary:        {"summary", "profile", "about", "objective"},
		model.IDExperience:     {"experience", "employment", "work history", "career"},
		model.IDEducation:      {"education", "academic", "studies", "degree"},
		model.IDSkills:         {"skill", "competenc", "expertise", "technologies"},
		model.IDLanguages:      {"language"},
		model.IDCertifications: {"certification", "certificate", "license", "accreditation"},
		model.IDProjects:       {"project", "portfolio"},
		model.IDAwards:         {"award", "honor", "honour", "achievement", "distinction"},
		model.IDVolunteering:   {"volunteer", "community", "civic"},
		model.IDPublications:   {"publication", "paper", "research"},
		model.IDInterests:      {"interest", "hobbies", "hobby", "activities"},
		model.IDReferences:     {"reference", "referee"},
		model.IDAdditional:     {"additional", "miscellaneous", "other"},
	},
	"fr": {
		model.IDHeader:         {"contact", "coordonnées", "informations personnelles"},
		model.IDSummary:        {"résumé", "profil", "à propos", "objectif", "présentation"},
		model.IDExperience:     {"expérience", "parcours professionnel", "emploi"},
		model.IDEducation:      {"formation", "éducation", "études", "scolarité", "diplôme"},
		model.IDSkills:         {"compétence", "aptitude", "savoir-faire", "technologies"},
		model.IDLanguages:      {"langue"},
		model.IDCertifications: {"certification", "certificat", "accréditation", "permis"},
		model.IDProjects:       {"projet", "réalisation"},
		model.IDAwards:         {"prix", "distinction", "récompense", "mention"},
		model.IDVolunteering:   {"bénévolat", "volontariat", "communautaire"},
		model.IDPublications:   {"publication", "article", "recherche"},
		model.IDInterests:      {"intérêt", "centres d'intérêt", "passe-temps"},
		model.IDReferences:     {"référence", "répondant"},
		model.IDAdditional:     {"complémentaire", "autres informations", "divers"},
	},
}

// displayNames provides the localized heading used when a standard section is
// synthesized, and feeds the paragraph-grouping fuzzy boundary match.
var displayNames = map[string]map[string]string{
	"en": {
		model.IDHeader:         "Contact",
		model.IDSummary:        "Summary",
		model.IDExperience:     "Experience",
		model.IDEducation:      "Education",
		model.IDSkills:         "Skills",
		model.IDLanguages:      "Languages",
		model.IDCertifications: "Certifications",
		model.IDProjects:       "Projects",
		model.IDAwards:         "Awards",
		model.IDVolunteering:   "Volunteering",
		model.IDPublications:   "Publications",
		model.IDInterests:      "Interests",
		model.IDReferences:     "References",
		model.IDAdditional:     "Additional Information",
	},
	"fr": {
		model.IDHeader:         "Coordonnées",
		model.IDSummary:        "Résumé",
		model.IDExperience:     "Expérience professionnelle",
		model.IDEducation:      "Formation",
		model.IDSkills:         "Compétences",
		model.IDLanguages:      "Langues",
		model.IDCertifications: "Certifications",
		model.IDProjects:       "Projets",
		model.IDAwards:         "Prix et distinctions",
		model.IDVolunteering:   "Bénévolat",
		model.IDPublications:   "Publications",
		model.IDInterests:      "Centres d'intérêt",
		model.IDReferences:     "Références",
		model.IDAdditional:     "Informations complémentaires",
	},
}

const defaultLanguage = "en"

func tableFor(lang string) map[string][]string {
	if t, ok := keywordTables[normalizeLang(lang)]; ok {
		return t
	}
	return keywordTables[defaultLanguage]
}

// DisplayName returns the localized display title for a standard section id.
func DisplayName(id, lang string) string {
	names, ok := displayNames[normalizeLang(lang)]
	if !ok {
		names = displayNames[defaultLanguage]
	}
	if name, ok := names[id]; ok {
		return name
	}
	words := strings.Split(strings.ReplaceAll(id, "-", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}

// Classify maps free heading text to a standard section id. The second result
// is false on a classification miss, which the caller resolves by
// synthesizing a slug id — a miss is never an error.
func Classify(headingText, lang string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(headingText))
	if text == "" {
		return "", false
	}
	table := tableFor(lang)
	for _, id := range model.StandardIDs {
		for _, kw := range table[id] {
			if strings.Contains(text, kw) {
				return id, true
			}
		}
	}
	return "", false
}

var (
	slugStrip    = regexp.MustCompile(`[^\pL\pN]+`)
	slugCollapse = regexp.MustCompile(`-{2,}`)
)

// SlugID derives a stable synthetic id from heading text: lower-cased,
// non-alphanumerics replaced by hyphens, collapsed and trimmed.
func SlugID(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// KindFor infers the semantic kind of a section from its title, independent
// of its id. Unclassifiable titles get KindCustom.
func KindFor(title, lang string) model.SectionKind {
	if id, ok := Classify(title, lang); ok {
		return model.SectionKind(id)
	}
	return model.KindCustom
}
