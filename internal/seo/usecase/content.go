package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"seo-management-agent/internal/model"
	"seo-management-agent/internal/seo"
	"seo-management-agent/internal/seo/formatter"
	"seo-management-agent/pkg/webpage"
)

// AnalyzeContent evaluates on-page SEO of a single page URL.
func (uc *usecase) AnalyzeContent(ctx context.Context, sc model.Scope, input seo.ContentInput) (seo.Output, error) {
	if uc.fetcher == nil {
		return seo.Output{}, seo.ErrNilFetcher
	}

	if err := webpage.ValidateURL(input.URL); err != nil {
		uc.l.Warnf(ctx, "%s: rejected URL %q: %v", LogPrefixContent, input.URL, err)
		return seo.Output{Report: formatter.ContentRejection(input.URL, err.Error())}, nil
	}

	uc.l.Infof(ctx, "%s: analyzing content at %s", LogPrefixContent, input.URL)

	fetchCtx, cancel := context.WithTimeout(ctx, PageFetchTimeout)
	defer cancel()

	page, err := uc.fetcher.Fetch(fetchCtx, input.URL)
	if err != nil {
		uc.l.Warnf(ctx, "%s: fetch failed: %v", LogPrefixContent, err)
		return seo.Output{Report: formatter.ContentFailure(input.URL, err.Error())}, nil
	}
	if page.StatusCode != http.StatusOK {
		uc.l.Warnf(ctx, "%s: page returned status %d", LogPrefixContent, page.StatusCode)
		return seo.Output{Report: formatter.ContentFailure(input.URL, fmt.Sprintf("unexpected status %d", page.StatusCode))}, nil
	}

	title, hasTitle := webpage.Title(page.Doc)
	meta, hasMeta := webpage.MetaDescription(page.Doc)
	checks := seo.ContentChecks{
		HasTitle:           hasTitle,
		TitleText:          title,
		HasMetaDescription: hasMeta,
		MetaDescription:    meta,
		H1Texts:            webpage.H1s(page.Doc),
		WordCount:          webpage.WordCount(page.Doc),
	}

	now := time.Now()
	uc.l.Infof(ctx, "%s: analysis complete, score %d/100", LogPrefixContent, checks.Score())

	return seo.Output{
		Report: formatter.ContentAnalysis(input.URL, checks, now),
		Findings: seo.Findings{
			Specialist:  model.SpecialistContentAnalysis,
			Checks:      checks.Checks(),
			Score:       checks.Score(),
			GeneratedAt: now,
		},
	}, nil
}
