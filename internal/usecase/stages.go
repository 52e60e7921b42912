package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"resume-composer/internal/model"
	"resume-composer/internal/section"
	"resume-composer/internal/template"
)

// Stage names recorded in job metadata.
const (
	StageNormalize = "normalize"
	StageParse     = "parse"
	StageRewrite   = "rewrite"
	StageRender    = "render"
)

// normalizeStage canonicalizes the raw content. Normalization is total and
// idempotent, so this stage cannot fail.
func (p *Processor) normalizeStage(st *pipelineState) {
	st.normalized = section.Normalize(st.raw)
	st.record(StageNormalize, true, "")
}

// parseStage extracts the canonical section model: cascade-parse, fill in
// the missing standard sections, order, and derive the header fields from
// the header section's content.
func (p *Processor) parseStage(st *pipelineState) {
	parsed := section.Parse(st.normalized, st.language)
	st.sections = section.EnsureAllStandard(parsed, st.language)

	st.header = model.HeaderInfo{Name: model.DefaultName}
	for _, s := range st.sections {
		if s.ID == model.IDHeader {
			st.header = section.ExtractHeader(s.Content)
			break
		}
	}
	st.record(StageParse, true, fmt.Sprintf("%d sections", len(st.sections)))
}

// rewriteStage asks the AI collaborator to polish each non-empty content
// section. Failures leave the section untouched: a rewrite miss must never
// block the rest of the document.
func (p *Processor) rewriteStage(ctx context.Context, st *pipelineState) {
	if p.ai == nil {
		st.record(StageRewrite, true, "skipped")
		return
	}
	rewritten := 0
	for i := range st.sections {
		s := &st.sections[i]
		if s.ID == model.IDHeader || s.Empty {
			continue
		}
		out, err := p.ai.RewriteSection(ctx, s.ID, s.Content, st.language)
		if err != nil {
			slog.Warn("rewrite failed, keeping original content", "section", s.ID, "error", err)
			continue
		}
		if out == "" {
			continue
		}
		s.Content = section.Normalize(out)
		s.Empty = section.IsEmpty(s.Content, s.Title)
		rewritten++
	}
	st.record(StageRewrite, true, fmt.Sprintf("%d sections rewritten", rewritten))
}

// renderStage applies the canonical model to the requested template. An
// unknown template id silently falls back to the default; the fallback is
// logged here since the renderer itself never errors.
func (p *Processor) renderStage(st *pipelineState) {
	if st.templateID != "" && !p.registry.Has(st.templateID) {
		slog.Warn("unknown template, falling back to default", "template", st.templateID)
	}
	def := p.registry.Get(st.templateID)
	st.rendered = template.Render(st.sections, st.header, def)
	st.record(StageRender, true, def.ID)
}
