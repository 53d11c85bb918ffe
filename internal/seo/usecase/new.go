package usecase

import (
	"seo-management-agent/internal/seo"
	pkgLog "seo-management-agent/pkg/log"
	"seo-management-agent/pkg/webpage"
)

type usecase struct {
	l       pkgLog.Logger
	fetcher webpage.Fetcher
	results seo.ResultReader
}

var _ seo.UseCase = (*usecase)(nil)

// New creates the SEO specialist use case.
// Convention: factory returns the concrete type for internal packages.
func New(l pkgLog.Logger, fetcher webpage.Fetcher, results seo.ResultReader) *usecase {
	return &usecase{
		l:       l,
		fetcher: fetcher,
		results: results,
	}
}
