package orchestrator

import "seo-management-agent/internal/model"

// Reply is the outcome of processing one user turn.
type Reply struct {
	SessionID  string
	Specialist model.Specialist // empty when no specialist was selected
	Text       string
	NewSession bool
}
