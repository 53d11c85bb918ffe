package seo

import (
	"context"

	"seo-management-agent/internal/model"
)

// UseCase defines the business logic interface for the SEO specialist handlers.
// Every method returns a complete Markdown report; input-validation and
// network failures are folded into the report text, never surfaced as errors.
type UseCase interface {
	// AuditTechnical runs the technical SEO audit against the permitted domain.
	AuditTechnical(ctx context.Context, sc model.Scope, input AuditInput) (Output, error)

	// ResearchKeywords produces the keyword strategy template for a topic.
	ResearchKeywords(ctx context.Context, sc model.Scope, input KeywordInput) (Output, error)

	// AnalyzeContent evaluates on-page SEO of a single page URL.
	AnalyzeContent(ctx context.Context, sc model.Scope, input ContentInput) (Output, error)

	// CheckPerformance renders the performance monitoring guidance for a
	// metric selector.
	CheckPerformance(ctx context.Context, sc model.Scope, input PerformanceInput) (Output, error)

	// GenerateReport assembles the cross-specialist report from the
	// session's stored findings.
	GenerateReport(ctx context.Context, sc model.Scope, input ReportInput) (Output, error)
}

// ResultReader exposes the stored findings of earlier specialist runs to
// the reporting handler. The session store satisfies it.
type ResultReader interface {
	Result(sessionID string, specialist model.Specialist) (Findings, bool)
}
