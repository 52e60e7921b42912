package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"resume-composer/internal/domain"
	"resume-composer/internal/model"
	"resume-composer/internal/template"
	"resume-composer/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	processor *usecase.Processor
	repo      usecase.DocumentsRepo
	registry  *template.Registry
}

func NewHandler(p *usecase.Processor, r usecase.DocumentsRepo, reg *template.Registry) *Handler {
	return &Handler{processor: p, repo: r, registry: reg}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/documents/parse", h.ParseDocument)
	app.Post("/documents/render", h.RenderDocument)
	app.Get("/templates", h.ListTemplates)
	app.Post("/jobs/start", h.StartJob)
	app.Get("/jobs/:id", h.GetJob)
}

type parseReq struct {
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
}

// ParseDocument runs the synchronous pipeline up to the canonical model and
// returns sections plus extracted header fields.
func (h *Handler) ParseDocument(c *fiber.Ctx) error {
	var req parseReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return c.JSON(h.processor.Parse(req.Content, req.Language))
}

type sectionPayload struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Visible *bool  `json:"visible,omitempty"`
}

type renderReq struct {
	Content  string           `json:"content,omitempty"`
	Sections []sectionPayload `json:"sections,omitempty"`
	Language string           `json:"language,omitempty"`
	Template string           `json:"template,omitempty"`
}

// RenderDocument renders either raw content (full pipeline) or an edited
// canonical section list (validated against the document schema first).
func (h *Handler) RenderDocument(c *fiber.Ctx) error {
	var req renderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	if len(req.Sections) > 0 {
		var generic map[string]interface{}
		if err := json.Unmarshal(c.Body(), &generic); err == nil {
			if err := model.ValidateDocumentMap(generic); err != nil {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
			}
		}
		secs := make([]model.Section, 0, len(req.Sections))
		for _, sp := range req.Sections {
			visible := sp.Visible == nil || *sp.Visible
			secs = append(secs, model.Section{ID: sp.ID, Title: sp.Title, Content: sp.Content, Visible: visible})
		}
		return c.JSON(h.processor.RenderSections(secs, req.Language, req.Template))
	}

	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content or sections required"})
	}
	return c.JSON(h.processor.Compose(req.Content, req.Language, req.Template))
}

// ListTemplates returns the registered template catalog.
func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(h.registry.List())
}

type startReq struct {
	UserID   string `json:"userId"`
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
	Template string `json:"template,omitempty"`
}

// StartJob accepts a composition job and processes it in the background.
func (h *Handler) StartJob(c *fiber.Ctx) error {
	var req startReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content required"})
	}

	job := &domain.DocumentJob{
		ID:         uuid.New(),
		UserID:     uid,
		RawContent: req.Content,
		Language:   req.Language,
		TemplateID: req.Template,
		Status:     domain.StatusPending,
		Metadata:   map[string]interface{}{},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	// persist initial job (best-effort)
	if h.repo != nil {
		if err := h.repo.Save(context.Background(), job); err != nil {
			slog.Warn("failed to save job", "job", job.ID.String(), "error", err)
		}
	}

	go func(j *domain.DocumentJob) {
		ctx := context.Background()
		if err := h.processor.Process(ctx, j); err != nil {
			slog.Error("job failed", "job", j.ID.String(), "error", err)
		}
	}(job)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": job.ID.String(), "status": "started"})
}

// GetJob reports a job's status and metadata.
func (h *Handler) GetJob(c *fiber.Ctx) error {
	if h.repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "persistence not configured"})
	}
	job, err := h.repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(job)
}
