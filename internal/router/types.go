package router

import "seo-management-agent/internal/model"

// Source records which stage of routing produced a decision.
type Source string

const (
	SourceRules  Source = "rules"
	SourceOracle Source = "oracle"
)

// Decision is the outcome of routing one user turn. Matched=false means
// no specialist was selected and the caller should ask the user to
// clarify. Decisions are not persisted.
type Decision struct {
	Specialist model.Specialist
	Matched    bool
	Source     Source
	Reasoning  string
}
