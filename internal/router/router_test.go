package router_test

import (
	"context"
	"errors"
	"testing"

	"seo-management-agent/internal/model"
	"seo-management-agent/internal/router"
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

type mockOracle struct {
	calls        int
	classifyFunc func(message string, candidates []string) (string, error)
}

func (m *mockOracle) Classify(ctx context.Context, message string, candidates []string) (string, error) {
	m.calls++
	if m.classifyFunc != nil {
		return m.classifyFunc(message, candidates)
	}
	return "", errors.New("oracle not configured")
}

func TestRouteRules(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    model.Specialist
	}{
		{"Audit Keyword", "Audit gsbg.in", model.SpecialistTechnicalAudit},
		{"Technical Keyword", "run a TECHNICAL review of the site", model.SpecialistTechnicalAudit},
		{"Keyword Research", "Research keywords for Salesforce consulting", model.SpecialistKeywordResearch},
		{"Content Analysis", "Analyze content at https://www.gsbg.in/services", model.SpecialistContentAnalysis},
		{"Performance Check", "monitor my site please", model.SpecialistPerformance},
		{"Reporting", "Generate comprehensive report for gsbg.in", model.SpecialistReporting},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			oracle := &mockOracle{}
			r := router.New(oracle, &mockLogger{})

			dec, err := r.Route(context.Background(), tc.message)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !dec.Matched {
				t.Fatalf("expected a match for %q", tc.message)
			}
			if dec.Specialist != tc.want {
				t.Errorf("expected %s, got %s", tc.want, dec.Specialist)
			}
			if dec.Source != router.SourceRules {
				t.Errorf("expected rules source, got %s", dec.Source)
			}
			if oracle.calls != 0 {
				t.Errorf("oracle consulted %d times despite rule match", oracle.calls)
			}
		})
	}
}

func TestRouteRulePriority(t *testing.T) {
	// "audit" and "report" both appear; the audit rule comes first.
	oracle := &mockOracle{}
	r := router.New(oracle, &mockLogger{})

	dec, err := r.Route(context.Background(), "audit the site and send me a report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Specialist != model.SpecialistTechnicalAudit {
		t.Errorf("expected technical_audit to win, got %s", dec.Specialist)
	}
	if oracle.calls != 0 {
		t.Errorf("oracle consulted despite rule match")
	}
}

func TestRouteOracleFallback(t *testing.T) {
	t.Run("Known Label", func(t *testing.T) {
		oracle := &mockOracle{
			classifyFunc: func(message string, candidates []string) (string, error) {
				if len(candidates) != 5 {
					t.Errorf("expected 5 candidates, got %d", len(candidates))
				}
				return "keyword_research", nil
			},
		}
		r := router.New(oracle, &mockLogger{})

		dec, err := r.Route(context.Background(), "help me rank for Salesforce partners")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dec.Matched || dec.Specialist != model.SpecialistKeywordResearch {
			t.Errorf("expected keyword_research via oracle, got %+v", dec)
		}
		if dec.Source != router.SourceOracle {
			t.Errorf("expected oracle source, got %s", dec.Source)
		}
	})

	t.Run("Decorated Label", func(t *testing.T) {
		oracle := &mockOracle{
			classifyFunc: func(message string, candidates []string) (string, error) {
				return "```\nReporting\n```", nil
			},
		}
		r := router.New(oracle, &mockLogger{})

		dec, err := r.Route(context.Background(), "sum up how my site is doing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dec.Matched || dec.Specialist != model.SpecialistReporting {
			t.Errorf("expected reporting after normalization, got %+v", dec)
		}
	})

	t.Run("Unknown Label", func(t *testing.T) {
		oracle := &mockOracle{
			classifyFunc: func(message string, candidates []string) (string, error) {
				return "social_media_manager", nil
			},
		}
		r := router.New(oracle, &mockLogger{})

		dec, err := r.Route(context.Background(), "post this on my feed")
		if err != nil {
			t.Fatalf("unknown label must not be an error, got %v", err)
		}
		if dec.Matched {
			t.Errorf("expected no match for unknown label, got %+v", dec)
		}
	})

	t.Run("Oracle Error Propagates", func(t *testing.T) {
		wantErr := errors.New("connection refused")
		oracle := &mockOracle{
			classifyFunc: func(message string, candidates []string) (string, error) {
				return "", wantErr
			},
		}
		r := router.New(oracle, &mockLogger{})

		_, err := r.Route(context.Background(), "help me rank better")
		if !errors.Is(err, wantErr) {
			t.Errorf("expected wrapped oracle error, got %v", err)
		}
		if oracle.calls != 1 {
			t.Errorf("expected exactly one oracle call, got %d", oracle.calls)
		}
	})
}
