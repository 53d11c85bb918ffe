package usecase

import "time"

// Log prefixes
const (
	LogPrefixAudit       = "internal.seo.usecase.AuditTechnical"
	LogPrefixKeywords    = "internal.seo.usecase.ResearchKeywords"
	LogPrefixContent     = "internal.seo.usecase.AnalyzeContent"
	LogPrefixPerformance = "internal.seo.usecase.CheckPerformance"
	LogPrefixReport      = "internal.seo.usecase.GenerateReport"
)

// Fetch deadlines. The homepage and content pages get the long bound;
// the robots.txt/sitemap.xml probes each get their own short one so a
// hanging probe cannot consume the audit's budget.
const (
	PageFetchTimeout = 10 * time.Second
	ProbeTimeout     = 5 * time.Second
)
