package seo

import "errors"

// Domain-specific errors for the seo package. These cover programming
// mistakes in wiring; user-facing failures (bad URL, wrong domain,
// unreachable site) are rendered into the report text instead.
var (
	ErrEmptyTopic = errors.New("keyword topic is empty")
	ErrNilResults = errors.New("result reader is not configured")
	ErrNilFetcher = errors.New("page fetcher is not configured")
)
