package router

import (
	"context"
	"fmt"
	"strings"

	"seo-management-agent/internal/model"
)

// Route decides which specialist handles the message. The ordered
// trigger rules are checked first; only when none match is the oracle
// consulted. Oracle transport errors propagate to the caller unretried.
func (r *SemanticRouter) Route(ctx context.Context, message string) (Decision, error) {
	lower := strings.ToLower(message)

	for _, rule := range routingRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				r.l.Infof(ctx, "%s: rule match %q -> %s", LogPrefixRoute, trigger, rule.specialist)
				return Decision{
					Specialist: rule.specialist,
					Matched:    true,
					Source:     SourceRules,
					Reasoning:  fmt.Sprintf("matched trigger %q", trigger),
				}, nil
			}
		}
	}

	candidates := make([]string, 0, len(routingRules))
	for _, rule := range routingRules {
		candidates = append(candidates, string(rule.specialist))
	}

	label, err := r.oracle.Classify(ctx, message, candidates)
	if err != nil {
		return Decision{}, fmt.Errorf("%s: oracle classification failed: %w", LogPrefixRoute, err)
	}

	name := normalizeLabel(label)
	if !model.IsKnownSpecialist(name) {
		r.l.Warnf(ctx, "%s: oracle answered unknown specialist %q", LogPrefixRoute, label)
		return Decision{
			Matched:   false,
			Source:    SourceOracle,
			Reasoning: fmt.Sprintf("oracle answered %q which names no specialist", label),
		}, nil
	}

	r.l.Infof(ctx, "%s: oracle match -> %s", LogPrefixRoute, name)
	return Decision{
		Specialist: model.Specialist(name),
		Matched:    true,
		Source:     SourceOracle,
		Reasoning:  "oracle classification",
	}, nil
}

// normalizeLabel strips the decoration models wrap answers in: code
// fences, backticks, quotes and trailing punctuation.
func normalizeLabel(label string) string {
	s := strings.TrimSpace(label)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.Trim(s, "`\"' \t\n.")
	return strings.ToLower(s)
}
