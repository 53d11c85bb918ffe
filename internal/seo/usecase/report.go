package usecase

import (
	"context"
	"time"

	"seo-management-agent/internal/model"
	"seo-management-agent/internal/seo"
	"seo-management-agent/internal/seo/formatter"
)

// GenerateReport assembles the cross-specialist report. Stored findings
// from the other four specialists gate each section's run/not-run status
// line; a session with no prior results renders every section as not
// yet run.
func (uc *usecase) GenerateReport(ctx context.Context, sc model.Scope, input seo.ReportInput) (seo.Output, error) {
	if uc.results == nil {
		return seo.Output{}, seo.ErrNilResults
	}

	reportType := input.ReportType
	if reportType == "" {
		reportType = seo.ReportComprehensive
	}

	uc.l.Infof(ctx, "%s: generating %s report", LogPrefixReport, reportType)

	status := formatter.SpecialistStatus{
		TechnicalAuditRun:  uc.hasResult(sc, model.SpecialistTechnicalAudit),
		KeywordResearchRun: uc.hasResult(sc, model.SpecialistKeywordResearch),
		ContentAnalysisRun: uc.hasResult(sc, model.SpecialistContentAnalysis),
		PerformanceRun:     uc.hasResult(sc, model.SpecialistPerformance),
	}

	now := time.Now()
	return seo.Output{
		Report: formatter.Comprehensive(seo.PermittedDomain, status, now),
		Findings: seo.Findings{
			Specialist: model.SpecialistReporting,
			Checks: map[string]any{
				"report_type": string(reportType),
			},
			GeneratedAt: now,
		},
	}, nil
}

func (uc *usecase) hasResult(sc model.Scope, specialist model.Specialist) bool {
	_, ok := uc.results.Result(sc.SessionID, specialist)
	return ok
}
