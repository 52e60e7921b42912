package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job statuses. A job moves pending → processing → completed/failed; partial
// failures (PDF render, persistence) leave it completed with metadata notes.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// DocumentJob is one composition request moving through the workflow:
// normalize → parse → optional rewrite → render → export → persist. The core
// pipeline itself is stateless; the job carries the inputs and collects the
// outputs and metadata.
type DocumentJob struct {
	ID         uuid.UUID              `json:"id"`
	UserID     uuid.UUID              `json:"user_id"`
	RawContent string                 `json:"raw_content"`
	Language   string                 `json:"language"`
	TemplateID string                 `json:"template_id"`
	Status     string                 `json:"status"`
	Metadata   map[string]interface{} `json:"metadata"`
	DocumentID *uuid.UUID             `json:"document_id,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}
