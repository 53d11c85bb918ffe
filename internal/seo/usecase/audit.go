package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"seo-management-agent/internal/model"
	"seo-management-agent/internal/seo"
	"seo-management-agent/internal/seo/formatter"
	"seo-management-agent/pkg/webpage"
)

// AuditTechnical runs the technical SEO audit against the permitted domain.
// Any requested domain other than the permitted one is rejected before a
// single request goes out.
func (uc *usecase) AuditTechnical(ctx context.Context, sc model.Scope, input seo.AuditInput) (seo.Output, error) {
	if uc.fetcher == nil {
		return seo.Output{}, seo.ErrNilFetcher
	}

	if !seo.IsPermittedDomain(input.Domain) {
		uc.l.Warnf(ctx, "%s: rejected domain %q", LogPrefixAudit, input.Domain)
		return seo.Output{Report: formatter.AuditRejection(input.Domain)}, nil
	}

	homepage := seo.HomepageURL
	uc.l.Infof(ctx, "%s: starting audit for %s", LogPrefixAudit, homepage)

	fetchCtx, cancel := context.WithTimeout(ctx, PageFetchTimeout)
	defer cancel()

	page, err := uc.fetcher.Fetch(fetchCtx, homepage)
	if err != nil {
		uc.l.Warnf(ctx, "%s: homepage fetch failed: %v", LogPrefixAudit, err)
		return seo.Output{Report: formatter.AuditFailure(homepage, err.Error())}, nil
	}
	if page.StatusCode != http.StatusOK {
		uc.l.Warnf(ctx, "%s: homepage returned status %d", LogPrefixAudit, page.StatusCode)
		return seo.Output{Report: formatter.AuditFailure(homepage, fmt.Sprintf("unexpected status %d", page.StatusCode))}, nil
	}

	// robots.txt and sitemap.xml are probed independently; a failed or
	// timed-out probe reads as "absent" and never fails the audit.
	title, hasTitle := webpage.Title(page.Doc)
	_, hasMeta := webpage.MetaDescription(page.Doc)
	checks := seo.AuditChecks{
		HasSSL:             strings.HasPrefix(homepage, "https://"),
		HasRobotsTxt:       uc.probe(ctx, homepage+"/robots.txt"),
		HasSitemap:         uc.probe(ctx, homepage+"/sitemap.xml"),
		HasTitle:           hasTitle,
		TitleText:          title,
		HasMetaDescription: hasMeta,
		H1Count:            len(webpage.H1s(page.Doc)),
	}

	now := time.Now()
	uc.l.Infof(ctx, "%s: audit complete, score %d/100", LogPrefixAudit, checks.Score())

	return seo.Output{
		Report: formatter.TechnicalAudit(homepage, checks, now),
		Findings: seo.Findings{
			Specialist:  model.SpecialistTechnicalAudit,
			Checks:      checks.Checks(),
			Score:       checks.Score(),
			GeneratedAt: now,
		},
	}, nil
}

func (uc *usecase) probe(ctx context.Context, url string) bool {
	probeCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()
	return uc.fetcher.Probe(probeCtx, url)
}
