package usecase

import (
	"context"
	"time"

	"seo-management-agent/internal/model"
	"seo-management-agent/internal/seo"
	"seo-management-agent/internal/seo/formatter"
)

// ResearchKeywords renders the keyword strategy template for a topic.
// No network call is made; the output is the static strategic template
// parameterized by the topic and optional focus area.
func (uc *usecase) ResearchKeywords(ctx context.Context, sc model.Scope, input seo.KeywordInput) (seo.Output, error) {
	if input.Topic == "" {
		return seo.Output{}, seo.ErrEmptyTopic
	}

	uc.l.Infof(ctx, "%s: researching keywords for topic %q", LogPrefixKeywords, input.Topic)

	now := time.Now()
	return seo.Output{
		Report: formatter.KeywordResearch(input.Topic, input.FocusArea, now),
		Findings: seo.Findings{
			Specialist: model.SpecialistKeywordResearch,
			Checks: map[string]any{
				"topic":      input.Topic,
				"focus_area": input.FocusArea,
			},
			GeneratedAt: now,
		},
	}, nil
}
