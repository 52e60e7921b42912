package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-composer/internal/domain"
	"resume-composer/internal/model"
	"resume-composer/internal/section"
	"resume-composer/internal/template"
	ai "resume-composer/pkg/ai"
)

// Renderer exports a rendered HTML document to PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// DocumentsRepo persists jobs and their resulting documents.
type DocumentsRepo interface {
	Save(ctx context.Context, j *domain.DocumentJob) error
	Get(ctx context.Context, id string) (*domain.DocumentJob, error)
}

// Processor drives the composition pipeline. The core stages are pure; the
// processor adds the workflow around them: AI rewrite, PDF export with
// retries, artifact files and persistence.
type Processor struct {
	renderer        Renderer
	repo            DocumentsRepo
	registry        *template.Registry
	ai              *ai.Client
	defaultLanguage string
	outputDir       string
}

func NewProcessor(r Renderer, repo DocumentsRepo, registry *template.Registry, defaultLanguage string) *Processor {
	p := &Processor{
		renderer:        r,
		repo:            repo,
		registry:        registry,
		defaultLanguage: defaultLanguage,
		outputDir:       "resume-data",
	}
	if os.Getenv("AI_REWRITE") == "true" {
		p.ai = ai.NewClientWithLanguage(defaultLanguage)
	}
	return p
}

// Parse runs the synchronous half of the pipeline: normalize, parse,
// ensure-all-standard, order, header extraction. It is pure and safe to call
// concurrently for independent documents.
func (p *Processor) Parse(raw, language string) ParseResult {
	st := &pipelineState{raw: raw, language: p.languageOr(language)}
	p.normalizeStage(st)
	p.parseStage(st)
	return ParseResult{Language: st.language, Sections: st.sections, Header: st.header}
}

// Compose runs the full synchronous pipeline through rendering. The AI
// rewrite stage is skipped; it only runs inside background jobs.
func (p *Processor) Compose(raw, language, templateID string) ComposeResult {
	st := &pipelineState{raw: raw, language: p.languageOr(language), templateID: templateID}
	p.normalizeStage(st)
	p.parseStage(st)
	p.renderStage(st)
	return ComposeResult{
		ParseResult: ParseResult{Language: st.language, Sections: st.sections, Header: st.header},
		Rendered:    st.rendered,
	}
}

// RenderSections renders an already-canonical section list, as handed back
// by an editor. Section content is re-normalized and kinds and emptiness are
// recomputed: derived flags are never trusted across a content mutation.
func (p *Processor) RenderSections(secs []model.Section, language, templateID string) ComposeResult {
	lang := p.languageOr(language)
	for i := range secs {
		s := &secs[i]
		s.ID = model.NormalizeID(s.ID)
		s.Content = section.Normalize(s.Content)
		if s.Title == "" && model.IsStandardID(s.ID) {
			s.Title = section.DisplayName(s.ID, lang)
		}
		s.Kind = section.KindFor(s.Title, lang)
		s.Empty = section.IsEmpty(s.Content, s.Title)
	}
	ordered := section.EnsureAllStandard(secs, lang)

	header := model.HeaderInfo{Name: model.DefaultName}
	for _, s := range ordered {
		if s.ID == model.IDHeader {
			header = section.ExtractHeader(s.Content)
			break
		}
	}

	if templateID != "" && !p.registry.Has(templateID) {
		slog.Warn("unknown template, falling back to default", "template", templateID)
	}
	rendered := template.Render(ordered, header, p.registry.Get(templateID))
	return ComposeResult{
		ParseResult: ParseResult{Language: lang, Sections: ordered, Header: header},
		Rendered:    rendered,
	}
}

// Process executes a background job end to end and persists the outcome.
// Only infrastructure failures (artifact writes) fail the job; content
// problems degrade inside the stages.
func (p *Processor) Process(ctx context.Context, job *domain.DocumentJob) error {
	job.Status = domain.StatusProcessing
	job.UpdatedAt = time.Now()
	p.save(ctx, job)

	lang := job.Language
	if lang == "" && p.ai != nil {
		if detected, err := p.ai.DetectLanguage(ctx, job.RawContent); err == nil && detected != "" {
			lang = detected
		} else if err != nil {
			slog.Warn("language detection failed, using default", "error", err)
		}
	}

	st := &pipelineState{raw: job.RawContent, language: p.languageOr(lang), templateID: job.TemplateID}
	p.normalizeStage(st)
	p.parseStage(st)
	p.rewriteStage(ctx, st)
	p.renderStage(st)

	if job.Metadata == nil {
		job.Metadata = map[string]interface{}{}
	}
	job.Language = st.language
	job.Metadata["stages"] = st.stages
	job.Metadata["template"] = st.rendered.TemplateID

	htmlDoc := pageDocument(st.rendered.HTML, st.rendered.Styles)

	genDir := filepath.Join(p.outputDir, "generated")
	if err := os.MkdirAll(genDir, 0o755); err != nil {
		job.Status = domain.StatusFailed
		p.save(ctx, job)
		return err
	}
	ts := time.Now().Format("20060102T150405")
	htmlPath := filepath.Join(genDir, fmt.Sprintf("resume_%s.html", ts))
	if err := os.WriteFile(htmlPath, []byte(htmlDoc), 0o644); err != nil {
		job.Status = domain.StatusFailed
		p.save(ctx, job)
		return err
	}
	job.Metadata["generated_html"] = htmlPath

	// PDF export with retry and signature validation; a render failure is
	// recorded but does not fail the job, the HTML artifact is preserved.
	pdfBytes, renderErr := p.renderPDF(ctx, htmlDoc)
	if renderErr != nil {
		slog.Warn("pdf export failed", "job", job.ID.String(), "error", renderErr)
		job.Metadata["generated_pdf"] = ""
		job.Metadata["pdf_render_error"] = renderErr.Error()
	} else {
		pdfPath := filepath.Join(genDir, fmt.Sprintf("resume_%s.pdf", ts))
		if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
			job.Status = domain.StatusFailed
			p.save(ctx, job)
			return err
		}
		job.Metadata["generated_pdf"] = pdfPath
	}

	job.Status = domain.StatusCompleted
	job.UpdatedAt = time.Now()
	p.save(ctx, job)
	return nil
}

func (p *Processor) renderPDF(ctx context.Context, htmlDoc string) ([]byte, error) {
	if p.renderer == nil {
		return nil, fmt.Errorf("no pdf renderer configured")
	}
	const attempts = 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		pdf, err := p.renderer.RenderHTMLToPDF(ctx, htmlDoc)
		if err == nil {
			if len(pdf) > 0 && strings.HasPrefix(string(pdf), "%PDF") {
				return pdf, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("rendering failed after %d attempts: %w", attempts, lastErr)
}

func (p *Processor) save(ctx context.Context, job *domain.DocumentJob) {
	if p.repo == nil {
		return
	}
	if err := p.repo.Save(ctx, job); err != nil {
		slog.Warn("failed to persist job", "job", job.ID.String(), "error", err)
	}
}

func (p *Processor) languageOr(lang string) string {
	if strings.TrimSpace(lang) != "" {
		return lang
	}
	if p.defaultLanguage != "" {
		return p.defaultLanguage
	}
	return "en"
}

// pageDocument wraps the rendered fragment and its styles into a standalone
// HTML page for artifacts and PDF export.
func pageDocument(body, styles string) string {
	return "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><style>" +
		styles + "</style></head><body>" + body + "</body></html>"
}
