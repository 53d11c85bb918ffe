package orchestrator

import (
	"context"
	"fmt"

	"seo-management-agent/internal/model"
	"seo-management-agent/internal/seo"
)

// Process handles one user turn end to end. Specialist-level failures
// (bad input, unreachable site) come back as report text; only oracle
// transport errors surface as errors, and the delivery layer turns
// those into a generic failure with a session-reset hint.
func (o *Orchestrator) Process(ctx context.Context, sessionID, message string) (Reply, error) {
	created := false
	if sessionID == "" || !o.store.Exists(sessionID) {
		sessionID = o.store.Create()
		created = true
		o.l.Infof(ctx, "%s: created session %s", LogPrefixProcess, sessionID)
	}

	o.store.AppendTurn(sessionID, model.Turn{Role: model.RoleUser, Text: message})

	decision, err := o.router.Route(ctx, message)
	if err != nil {
		return Reply{}, fmt.Errorf("%s: %w", LogPrefixProcess, err)
	}

	if !decision.Matched {
		o.store.AppendTurn(sessionID, model.Turn{Role: model.RoleAssistant, Text: ClarifyMessage})
		return Reply{SessionID: sessionID, Text: ClarifyMessage, NewSession: created}, nil
	}

	out, err := o.dispatch(ctx, sessionID, decision.Specialist, message)
	if err != nil {
		return Reply{}, fmt.Errorf("%s: %s handler: %w", LogPrefixProcess, decision.Specialist, err)
	}

	if out.Findings.Specialist != "" {
		o.store.SetResult(sessionID, out.Findings.Specialist, out.Findings)
	}
	o.store.AppendTurn(sessionID, model.Turn{Role: model.RoleAssistant, Text: out.Report})

	return Reply{
		SessionID:  sessionID,
		Specialist: decision.Specialist,
		Text:       out.Report,
		NewSession: created,
	}, nil
}

// dispatch derives the handler input from the raw message and invokes
// the one selected specialist.
func (o *Orchestrator) dispatch(ctx context.Context, sessionID string, specialist model.Specialist, message string) (seo.Output, error) {
	sc := model.Scope{SessionID: sessionID}

	switch specialist {
	case model.SpecialistTechnicalAudit:
		return o.uc.AuditTechnical(ctx, sc, seo.AuditInput{
			Domain: extractDomain(message),
		})
	case model.SpecialistKeywordResearch:
		topic, focus := extractTopic(message)
		return o.uc.ResearchKeywords(ctx, sc, seo.KeywordInput{
			Topic:     topic,
			FocusArea: focus,
		})
	case model.SpecialistContentAnalysis:
		return o.uc.AnalyzeContent(ctx, sc, seo.ContentInput{
			URL: extractURL(message),
		})
	case model.SpecialistPerformance:
		return o.uc.CheckPerformance(ctx, sc, seo.PerformanceInput{
			Domain:     extractDomain(message),
			MetricType: extractMetricType(message),
		})
	case model.SpecialistReporting:
		return o.uc.GenerateReport(ctx, sc, seo.ReportInput{
			ReportType: seo.ReportComprehensive,
		})
	default:
		return seo.Output{}, fmt.Errorf("unknown specialist %q", specialist)
	}
}

// History returns the most recent turns of a session, oldest first.
func (o *Orchestrator) History(sessionID string, limit int) []model.Turn {
	return o.store.History(sessionID, limit)
}

// SessionExists reports whether the session is still live.
func (o *Orchestrator) SessionExists(sessionID string) bool {
	return o.store.Exists(sessionID)
}
