package usecase

import (
	"resume-composer/internal/model"
)

// ParseResult is the canonical model derived from one raw document: the
// ordered section list (one per standard id plus custom slugs) and the
// header fields extracted from the header section.
type ParseResult struct {
	Language string          `json:"language"`
	Sections []model.Section `json:"sections"`
	Header   model.HeaderInfo `json:"header"`
}

// ComposeResult bundles the canonical model with its rendered form.
type ComposeResult struct {
	ParseResult
	Rendered model.RenderedDocument `json:"rendered"`
}

// StageResult records the outcome of one pipeline stage for job metadata.
// Stages degrade rather than abort: OK=false with a detail note means the
// stage fell back, not that the job failed.
type StageResult struct {
	Stage  string `json:"stage"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// pipelineState is the mutable carrier threaded through the stages of a
// single job. It never outlives the call that created it.
type pipelineState struct {
	raw        string
	language   string
	templateID string
	normalized string
	sections   []model.Section
	header     model.HeaderInfo
	rendered   model.RenderedDocument
	stages     []StageResult
}

func (st *pipelineState) record(stage string, ok bool, detail string) {
	st.stages = append(st.stages, StageResult{Stage: stage, OK: ok, Detail: detail})
}
