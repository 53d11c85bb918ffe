package usecase

import (
	"context"
	"time"

	"seo-management-agent/internal/model"
	"seo-management-agent/internal/seo"
	"seo-management-agent/internal/seo/formatter"
)

// CheckPerformance renders the performance monitoring guidance. No live
// telemetry is fetched; the metric selector gates fixed sections and an
// unknown selector simply yields no extra sections beyond the header.
func (uc *usecase) CheckPerformance(ctx context.Context, sc model.Scope, input seo.PerformanceInput) (seo.Output, error) {
	domain := input.Domain
	if domain == "" {
		domain = seo.PermittedDomain
	}
	metric := input.MetricType
	if metric == "" {
		metric = seo.MetricAll
	}

	uc.l.Infof(ctx, "%s: performance report for %s, metrics=%s", LogPrefixPerformance, domain, metric)

	now := time.Now()
	return seo.Output{
		Report: formatter.Performance(domain, metric, now),
		Findings: seo.Findings{
			Specialist: model.SpecialistPerformance,
			Checks: map[string]any{
				"domain":      domain,
				"metric_type": string(metric),
			},
			GeneratedAt: now,
		},
	}, nil
}
