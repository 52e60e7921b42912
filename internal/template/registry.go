// Package template holds the data-driven skin definitions and the renderer
// that applies a canonical section model to them.
package template

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Location places a section in the skeleton's main column or sidebar.
type Location string

const (
	LocationMain    Location = "main"
	LocationSidebar Location = "sidebar"
)

// SectionConfig is the per-section display configuration of a template.
type SectionConfig struct {
	Icon         string   `json:"icon,omitempty"`
	Location     Location `json:"location"`
	DisplayStyle string   `json:"displayStyle,omitempty"`
}

// Definition is an immutable template ("skin"): a skeleton with one
// placeholder per standard section id and exactly one header marker, plus
// per-section display configuration and a styles block.
type Definition struct {
	ID            string                   `json:"id"`
	DisplayName   string                   `json:"displayName"`
	Pro           bool                     `json:"isPro"`
	Skeleton      string                   `json:"-"`
	SectionConfig map[string]SectionConfig `json:"sectionConfig"`
	Styles        string                   `json:"-"`
}

// Registry is the static template catalog. It is populated at startup and
// read-only afterwards.
type Registry struct {
	mu        sync.RWMutex
	byID      map[string]*Definition
	order     []string
	defaultID string
}

// NewRegistry creates a registry whose Get falls back to defaultID on
// unknown lookups.
func NewRegistry(defaultID string) *Registry {
	return &Registry{byID: map[string]*Definition{}, defaultID: defaultID}
}

// Register validates and adds a template definition. Duplicate ids and
// definitions missing a display name, skeleton, header marker or styles are
// rejected.
func (r *Registry) Register(def *Definition) error {
	if def == nil || strings.TrimSpace(def.ID) == "" {
		return fmt.Errorf("template: missing id")
	}
	if strings.TrimSpace(def.DisplayName) == "" {
		return fmt.Errorf("template %q: missing display name", def.ID)
	}
	if strings.TrimSpace(def.Skeleton) == "" {
		return fmt.Errorf("template %q: missing skeleton", def.ID)
	}
	if !strings.Contains(def.Skeleton, HeaderMarker) {
		return fmt.Errorf("template %q: skeleton has no header marker", def.ID)
	}
	if strings.TrimSpace(def.Styles) == "" {
		return fmt.Errorf("template %q: missing styles", def.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[def.ID]; exists {
		return fmt.Errorf("template %q: duplicate id", def.ID)
	}
	r.byID[def.ID] = def
	r.order = append(r.order, def.ID)
	return nil
}

// Get looks a template up by id. An unknown or blank id silently falls back
// to the designated default template; it never fails.
func (r *Registry) Get(id string) *Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if def, ok := r.byID[id]; ok {
		return def
	}
	return r.byID[r.defaultID]
}

// Has reports whether an id is registered, letting callers log fallback
// warnings without changing Get's never-fail contract.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}

// List returns the registered definitions in registration order.
func (r *Registry) List() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// configIDs returns the section ids present in a definition's config in
// deterministic order: canonical standard order first, then the rest sorted.
func configIDs(def *Definition, canonical []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, id := range canonical {
		if _, ok := def.SectionConfig[id]; ok {
			out = append(out, id)
			seen[id] = true
		}
	}
	var rest []string
	for id := range def.SectionConfig {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
