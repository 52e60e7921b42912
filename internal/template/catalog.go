package template

import (
	"fmt"
	"strings"
	"sync"

	"resume-composer/internal/model"
)

// DefaultTemplateID is the fallback for unknown template lookups.
const DefaultTemplateID = "classic"

var (
	catalogOnce sync.Once
	catalog     *Registry
)

// Catalog returns the process-wide template registry, built once and
// read-only afterwards.
func Catalog() *Registry {
	catalogOnce.Do(func() {
		catalog = NewRegistry(DefaultTemplateID)
		for _, def := range builtinDefinitions() {
			if err := catalog.Register(def); err != nil {
				panic(fmt.Sprintf("template catalog: %v", err))
			}
		}
	})
	return catalog
}

// sectionContainer builds one skeleton container. Containers carry both an id
// and a data-section attribute so rendered documents re-enter the parser
// through the explicit-container strategy.
func sectionContainer(id string) string {
	return fmt.Sprintf(`<section id=%q class="resume-section" data-section=%q>{{%s}}</section>`, id, id, id)
}

func sectionContainers(ids []string) string {
	var b strings.Builder
	for _, id := range ids {
		b.WriteString("\n    ")
		b.WriteString(sectionContainer(id))
	}
	return b.String()
}

func contentIDs() []string {
	out := make([]string, 0, len(model.StandardIDs)-1)
	for _, id := range model.StandardIDs {
		if id != model.IDHeader {
			out = append(out, id)
		}
	}
	return out
}

func builtinDefinitions() []*Definition {
	mainOnly := map[string]SectionConfig{
		model.IDSummary:        {Location: LocationMain},
		model.IDExperience:     {Location: LocationMain},
		model.IDEducation:      {Location: LocationMain},
		model.IDSkills:         {Location: LocationMain, DisplayStyle: "columns"},
		model.IDLanguages:      {Location: LocationMain, DisplayStyle: "columns"},
		model.IDCertifications: {Location: LocationMain},
		model.IDProjects:       {Location: LocationMain},
		model.IDAwards:         {Location: LocationMain},
		model.IDVolunteering:   {Location: LocationMain},
		model.IDPublications:   {Location: LocationMain},
		model.IDInterests:      {Location: LocationMain, DisplayStyle: "columns"},
		model.IDReferences:     {Location: LocationMain},
		model.IDAdditional:     {Location: LocationMain},
	}

	sidebarIDs := []string{model.IDSkills, model.IDLanguages, model.IDCertifications, model.IDInterests}
	sidebarSet := map[string]bool{}
	for _, id := range sidebarIDs {
		sidebarSet[id] = true
	}
	var sidebarMainIDs []string
	for _, id := range contentIDs() {
		if !sidebarSet[id] {
			sidebarMainIDs = append(sidebarMainIDs, id)
		}
	}

	sidebarCfg := map[string]SectionConfig{}
	icons := map[string]string{
		model.IDSummary:        "✦",
		model.IDExperience:     "⚒",
		model.IDEducation:      "🎓",
		model.IDSkills:         "⚙",
		model.IDLanguages:      "🌐",
		model.IDCertifications: "✓",
		model.IDProjects:       "▣",
		model.IDAwards:         "★",
		model.IDVolunteering:   "♥",
		model.IDPublications:   "✎",
		model.IDInterests:      "◆",
		model.IDReferences:     "☰",
		model.IDAdditional:     "…",
	}
	for _, id := range contentIDs() {
		cfg := SectionConfig{Location: LocationMain, Icon: icons[id]}
		if sidebarSet[id] {
			cfg.Location = LocationSidebar
			cfg.DisplayStyle = "stacked"
		}
		sidebarCfg[id] = cfg
	}

	classic := &Definition{
		ID:          "classic",
		DisplayName: "Classic",
		Skeleton: `<div class="resume resume-classic">
  <section id="header" class="resume-header" data-section="header">
    ` + HeaderMarker + `
  </section>
  <main class="resume-main">` + sectionContainers(contentIDs()) + `
  </main>
</div>`,
		SectionConfig: mainOnly,
		Styles: `.resume-classic{font-family:Georgia,serif;max-width:48rem;margin:0 auto}
.resume-classic .resume-header{border-bottom:2px solid #222;padding-bottom:.5rem}
.resume-classic .resume-section{margin-top:1.25rem}
.resume-classic ul.columns{columns:2;column-gap:2rem}
.resume-classic .contact-sep{margin:0 .4rem;color:#888}`,
	}

	sidebar := &Definition{
		ID:          "sidebar",
		DisplayName: "Sidebar",
		Pro:         true,
		Skeleton: `<div class="resume resume-sidebar">
  <section id="header" class="resume-header" data-section="header">
    ` + HeaderMarker + `
  </section>
  <div class="resume-body">
    <aside class="resume-aside">` + sectionContainers(sidebarIDs) + `
    </aside>
    <main class="resume-main">` + sectionContainers(sidebarMainIDs) + `
    </main>
  </div>
</div>`,
		SectionConfig: sidebarCfg,
		Styles: `.resume-sidebar{font-family:'Helvetica Neue',Arial,sans-serif}
.resume-sidebar .resume-body{display:flex;gap:2rem}
.resume-sidebar .resume-aside{flex:0 0 16rem;background:#f4f6f8;padding:1rem}
.resume-sidebar .resume-main{flex:1}
.resume-sidebar .section-icon{margin-right:.35rem}
.resume-sidebar .contact-sep{margin:0 .4rem;color:#aab}`,
	}

	compactCfg := map[string]SectionConfig{}
	for _, id := range contentIDs() {
		compactCfg[id] = SectionConfig{Location: LocationMain, DisplayStyle: "inline"}
	}
	compact := &Definition{
		ID:          "compact",
		DisplayName: "Compact",
		Pro:         true,
		Skeleton: `<div class="resume resume-compact">
  <section id="header" class="resume-header" data-section="header">
    ` + HeaderMarker + `
  </section>
  <main class="resume-main">` + sectionContainers(contentIDs()) + `
  </main>
</div>`,
		SectionConfig: compactCfg,
		Styles: `.resume-compact{font-family:'Segoe UI',sans-serif;font-size:.85rem;line-height:1.3}
.resume-compact .resume-section{margin-top:.6rem}
.resume-compact ul.inline{display:flex;flex-wrap:wrap;gap:.4rem;list-style:none;padding:0}
.resume-compact .contact-sep{margin:0 .3rem;color:#999}`,
	}

	return []*Definition{classic, sidebar, compact}
}
