package router

import "seo-management-agent/internal/model"

// Log prefixes
const (
	LogPrefixRoute    = "internal.router.Route"
	LogPrefixClassify = "internal.router.geminiOracle.Classify"
)

// rule binds a specialist to its trigger phrases.
type rule struct {
	specialist model.Specialist
	triggers   []string
}

// routingRules is evaluated top to bottom with case-insensitive
// substring matching; the first rule with a matching trigger wins.
// Order is a contract: "audit" must resolve to the technical audit even
// when a later rule's phrase ("report", "check") also appears in the
// message.
var routingRules = []rule{
	{model.SpecialistTechnicalAudit, []string{"audit", "technical"}},
	{model.SpecialistKeywordResearch, []string{"keyword", "research"}},
	{model.SpecialistContentAnalysis, []string{"content", "analyze page"}},
	{model.SpecialistPerformance, []string{"performance", "check", "monitor"}},
	{model.SpecialistReporting, []string{"report", "comprehensive"}},
}

// Classification oracle prompt. The oracle sees the same rule list the
// deterministic matcher uses and must answer with a bare specialist
// name, nothing else.
const PromptClassifySystem = `You route SEO requests to specialist handlers by matching the user's intent.

Match keywords to specialists:
- "audit", "technical" -> technical_audit
- "keyword", "research" -> keyword_research
- "content", "analyze page" -> content_analysis
- "performance", "check", "monitor" -> performance
- "report", "comprehensive" -> reporting

Reply with EXACTLY ONE specialist name from: %s.
Do NOT explain. Do NOT acknowledge. Output the name only.`

// Oracle generation settings: near-deterministic, tiny output.
const (
	OracleTemperature     = 0.1
	OracleMaxOutputTokens = 16
)
