package seo

import (
	"time"

	"seo-management-agent/internal/model"
)

// Findings is the structured payload a specialist computes before
// rendering. Checks maps check names to booleans, counts or strings;
// Score is the weighted sum in [0,100]. A handler either fills the whole
// payload or returns a failure report with zero-value findings — never a
// partial one.
type Findings struct {
	Specialist  model.Specialist `json:"specialist"`
	Checks      map[string]any   `json:"checks,omitempty"`
	Score       int              `json:"score"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Output is the result of a specialist invocation.
type Output struct {
	Report   string
	Findings Findings
}

// AuditInput is the input for the technical audit.
type AuditInput struct {
	Domain string
}

// KeywordInput is the input for keyword research.
type KeywordInput struct {
	Topic     string
	FocusArea string // optional
}

// ContentInput is the input for content analysis.
type ContentInput struct {
	URL string
}

// MetricType selects which performance sections to render.
type MetricType string

const (
	MetricAll      MetricType = "all"
	MetricRankings MetricType = "rankings"
	MetricTraffic  MetricType = "traffic"
	MetricSpeed    MetricType = "speed"
)

// PerformanceInput is the input for performance monitoring.
type PerformanceInput struct {
	Domain     string
	MetricType MetricType
}

// ReportType selects the reporting flavor. Only the comprehensive layout
// is rendered today; the parameter is part of the canonical signature.
type ReportType string

const ReportComprehensive ReportType = "comprehensive"

// ReportInput is the input for report generation.
type ReportInput struct {
	ReportType ReportType
}
