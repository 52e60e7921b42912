package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resume-composer/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// DocumentsRepo persists composition jobs and their resulting documents.
// A nil pool disables persistence: every call becomes a no-op so the rest of
// the pipeline keeps working without a database.
type DocumentsRepo struct {
	pool *pgxpool.Pool
}

func NewDocumentsRepo(pool *pgxpool.Pool) *DocumentsRepo {
	return &DocumentsRepo{pool: pool}
}

func (r *DocumentsRepo) Save(ctx context.Context, j *domain.DocumentJob) error {
	if r.pool == nil {
		return nil
	}

	metaB, _ := json.Marshal(j.Metadata)

	_, err := r.pool.Exec(ctx, `INSERT INTO document_jobs (id, user_id, raw_content, language, template_id, status, metadata, document_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET language = EXCLUDED.language, template_id = EXCLUDED.template_id, status = EXCLUDED.status, metadata = EXCLUDED.metadata, document_id = EXCLUDED.document_id, updated_at = EXCLUDED.updated_at`,
		j.ID, j.UserID, j.RawContent, j.Language, j.TemplateID, j.Status, metaB, j.DocumentID, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return err
	}

	if j.Status != domain.StatusCompleted {
		return nil
	}

	// Best-effort: upsert the resulting document row once the job completes.
	var docID uuid.UUID
	if j.DocumentID != nil {
		docID = *j.DocumentID
	} else {
		docID = uuid.New()
		j.DocumentID = &docID
	}

	htmlPath := ""
	pdfPath := ""
	if j.Metadata != nil {
		if p, ok := j.Metadata["generated_html"].(string); ok {
			htmlPath = p
		}
		if p, ok := j.Metadata["generated_pdf"].(string); ok {
			pdfPath = p
		}
	}

	if _, e := r.pool.Exec(ctx, `INSERT INTO documents (id, user_id, language, template_id, html_path, pdf_path, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET language = EXCLUDED.language, template_id = EXCLUDED.template_id, html_path = EXCLUDED.html_path, pdf_path = EXCLUDED.pdf_path, updated_at = EXCLUDED.updated_at`,
		docID, j.UserID, j.Language, j.TemplateID, htmlPath, pdfPath, j.CreatedAt, time.Now()); e != nil {
		return fmt.Errorf("unable to upsert document row: %w", e)
	}

	return nil
}

func (r *DocumentsRepo) Get(ctx context.Context, id string) (*domain.DocumentJob, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("documents repository not configured")
	}

	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid job id: %w", err)
	}

	var (
		j     domain.DocumentJob
		metaB []byte
	)
	row := r.pool.QueryRow(ctx, `SELECT id, user_id, raw_content, language, template_id, status, metadata, document_id, created_at, updated_at
		FROM document_jobs WHERE id = $1`, jobID)
	if err := row.Scan(&j.ID, &j.UserID, &j.RawContent, &j.Language, &j.TemplateID, &j.Status, &metaB, &j.DocumentID, &j.CreatedAt, &j.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("job %s not found", id)
		}
		return nil, err
	}
	if len(metaB) > 0 {
		_ = json.Unmarshal(metaB, &j.Metadata)
	}
	return &j, nil
}
