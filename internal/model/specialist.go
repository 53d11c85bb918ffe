package model

// Specialist identifies one of the five SEO specialist handlers.
type Specialist string

const (
	SpecialistTechnicalAudit  Specialist = "technical_audit"
	SpecialistKeywordResearch Specialist = "keyword_research"
	SpecialistContentAnalysis Specialist = "content_analysis"
	SpecialistPerformance     Specialist = "performance"
	SpecialistReporting       Specialist = "reporting"
)

// KnownSpecialists returns every specialist in routing priority order.
// The order matters: the router evaluates trigger rules top to bottom
// and the first match wins.
func KnownSpecialists() []Specialist {
	return []Specialist{
		SpecialistTechnicalAudit,
		SpecialistKeywordResearch,
		SpecialistContentAnalysis,
		SpecialistPerformance,
		SpecialistReporting,
	}
}

// IsKnownSpecialist reports whether name matches a registered specialist.
func IsKnownSpecialist(name string) bool {
	for _, s := range KnownSpecialists() {
		if string(s) == name {
			return true
		}
	}
	return false
}
