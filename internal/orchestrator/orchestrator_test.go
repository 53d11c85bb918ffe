package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"seo-management-agent/internal/model"
	"seo-management-agent/internal/orchestrator"
	"seo-management-agent/internal/router"
	"seo-management-agent/internal/seo"
	"seo-management-agent/internal/session"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type mockRouter struct {
	decision router.Decision
	err      error
}

func (m *mockRouter) Route(ctx context.Context, message string) (router.Decision, error) {
	return m.decision, m.err
}

type mockUseCase struct {
	auditFunc   func(input seo.AuditInput) (seo.Output, error)
	keywordFunc func(input seo.KeywordInput) (seo.Output, error)
	contentFunc func(input seo.ContentInput) (seo.Output, error)
	perfFunc    func(input seo.PerformanceInput) (seo.Output, error)
	reportFunc  func(input seo.ReportInput) (seo.Output, error)
}

func (m *mockUseCase) AuditTechnical(ctx context.Context, sc model.Scope, input seo.AuditInput) (seo.Output, error) {
	if m.auditFunc != nil {
		return m.auditFunc(input)
	}
	return seo.Output{}, errors.New("audit not configured")
}

func (m *mockUseCase) ResearchKeywords(ctx context.Context, sc model.Scope, input seo.KeywordInput) (seo.Output, error) {
	if m.keywordFunc != nil {
		return m.keywordFunc(input)
	}
	return seo.Output{}, errors.New("keywords not configured")
}

func (m *mockUseCase) AnalyzeContent(ctx context.Context, sc model.Scope, input seo.ContentInput) (seo.Output, error) {
	if m.contentFunc != nil {
		return m.contentFunc(input)
	}
	return seo.Output{}, errors.New("content not configured")
}

func (m *mockUseCase) CheckPerformance(ctx context.Context, sc model.Scope, input seo.PerformanceInput) (seo.Output, error) {
	if m.perfFunc != nil {
		return m.perfFunc(input)
	}
	return seo.Output{}, errors.New("performance not configured")
}

func (m *mockUseCase) GenerateReport(ctx context.Context, sc model.Scope, input seo.ReportInput) (seo.Output, error) {
	if m.reportFunc != nil {
		return m.reportFunc(input)
	}
	return seo.Output{}, errors.New("report not configured")
}

func newStore() *session.Store {
	return session.New(10, time.Hour)
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("New Session Created When ID Empty", func(t *testing.T) {
		store := newStore()
		r := &mockRouter{decision: router.Decision{
			Specialist: model.SpecialistTechnicalAudit,
			Matched:    true,
			Source:     router.SourceRules,
		}}
		uc := &mockUseCase{auditFunc: func(input seo.AuditInput) (seo.Output, error) {
			return seo.Output{
				Report:   "audit report",
				Findings: seo.Findings{Specialist: model.SpecialistTechnicalAudit, Score: 85},
			}, nil
		}}
		o := orchestrator.New(&mockLogger{}, r, uc, store)

		reply, err := o.Process(ctx, "", "audit gsbg.in")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reply.NewSession || reply.SessionID == "" {
			t.Errorf("expected a fresh session, got %+v", reply)
		}
		if reply.Text != "audit report" {
			t.Errorf("expected handler report, got %q", reply.Text)
		}

		// Both turns and the findings landed on the session.
		turns := store.History(reply.SessionID, 0)
		if len(turns) != 2 {
			t.Fatalf("expected user+assistant turns, got %d", len(turns))
		}
		if turns[0].Role != model.RoleUser || turns[1].Role != model.RoleAssistant {
			t.Errorf("turn roles wrong: %+v", turns)
		}
		if _, ok := store.Result(reply.SessionID, model.SpecialistTechnicalAudit); !ok {
			t.Error("findings should be stored for the reporting handler")
		}
	})

	t.Run("Unknown Session ID Replaced", func(t *testing.T) {
		store := newStore()
		r := &mockRouter{decision: router.Decision{Matched: false, Source: router.SourceOracle}}
		o := orchestrator.New(&mockLogger{}, r, &mockUseCase{}, store)

		reply, err := o.Process(ctx, "stale-id", "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reply.NewSession {
			t.Error("stale session id should start a new session")
		}
		if reply.SessionID == "stale-id" {
			t.Error("stale id must not be reused")
		}
	})

	t.Run("Existing Session Reused", func(t *testing.T) {
		store := newStore()
		id := store.Create()
		r := &mockRouter{decision: router.Decision{Matched: false}}
		o := orchestrator.New(&mockLogger{}, r, &mockUseCase{}, store)

		reply, err := o.Process(ctx, id, "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.NewSession || reply.SessionID != id {
			t.Errorf("expected session %s reused, got %+v", id, reply)
		}
	})

	t.Run("Unmatched Routing Asks For Clarification", func(t *testing.T) {
		store := newStore()
		r := &mockRouter{decision: router.Decision{Matched: false, Source: router.SourceOracle}}
		o := orchestrator.New(&mockLogger{}, r, &mockUseCase{}, store)

		reply, err := o.Process(ctx, "", "post this on my feed")
		if err != nil {
			t.Fatalf("unmatched routing must not error, got %v", err)
		}
		if reply.Text != orchestrator.ClarifyMessage {
			t.Errorf("expected clarify message, got %q", reply.Text)
		}
		if reply.Specialist != "" {
			t.Errorf("no specialist should be recorded, got %s", reply.Specialist)
		}
		// The clarification is still part of the conversation.
		turns := store.History(reply.SessionID, 0)
		if len(turns) != 2 || turns[1].Text != orchestrator.ClarifyMessage {
			t.Errorf("clarify turn missing from history: %+v", turns)
		}
	})

	t.Run("Router Error Propagates", func(t *testing.T) {
		store := newStore()
		wantErr := errors.New("oracle down")
		r := &mockRouter{err: wantErr}
		o := orchestrator.New(&mockLogger{}, r, &mockUseCase{}, store)

		_, err := o.Process(ctx, "", "help me rank")
		if !errors.Is(err, wantErr) {
			t.Errorf("expected wrapped router error, got %v", err)
		}
	})

	t.Run("Handler Error Propagates", func(t *testing.T) {
		store := newStore()
		wantErr := errors.New("handler exploded")
		r := &mockRouter{decision: router.Decision{
			Specialist: model.SpecialistReporting,
			Matched:    true,
		}}
		uc := &mockUseCase{reportFunc: func(input seo.ReportInput) (seo.Output, error) {
			return seo.Output{}, wantErr
		}}
		o := orchestrator.New(&mockLogger{}, r, uc, store)

		_, err := o.Process(ctx, "", "generate report")
		if !errors.Is(err, wantErr) {
			t.Errorf("expected wrapped handler error, got %v", err)
		}
	})

	t.Run("Failure Report Stores No Findings", func(t *testing.T) {
		store := newStore()
		r := &mockRouter{decision: router.Decision{
			Specialist: model.SpecialistTechnicalAudit,
			Matched:    true,
		}}
		uc := &mockUseCase{auditFunc: func(input seo.AuditInput) (seo.Output, error) {
			// Rejections and network failures come back as report text
			// with zero-value findings.
			return seo.Output{Report: "❌ could not reach the site"}, nil
		}}
		o := orchestrator.New(&mockLogger{}, r, uc, store)

		reply, err := o.Process(ctx, "", "audit gsbg.in")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := store.Result(reply.SessionID, model.SpecialistTechnicalAudit); ok {
			t.Error("failure output must not store findings")
		}
		if !strings.Contains(reply.Text, "could not reach") {
			t.Errorf("failure report should be the reply, got %q", reply.Text)
		}
	})

	t.Run("Dispatch Passes Extracted Inputs", func(t *testing.T) {
		store := newStore()
		r := &mockRouter{decision: router.Decision{
			Specialist: model.SpecialistKeywordResearch,
			Matched:    true,
		}}
		var got seo.KeywordInput
		uc := &mockUseCase{keywordFunc: func(input seo.KeywordInput) (seo.Output, error) {
			got = input
			return seo.Output{Report: "keywords"}, nil
		}}
		o := orchestrator.New(&mockLogger{}, r, uc, store)

		_, err := o.Process(ctx, "", "research keywords for Salesforce consulting, focus on real estate")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Topic != "Salesforce consulting" {
			t.Errorf("expected topic extracted, got %q", got.Topic)
		}
		if got.FocusArea != "real estate" {
			t.Errorf("expected focus area extracted, got %q", got.FocusArea)
		}
	})
}
