package router

import (
	"context"

	pkgLog "seo-management-agent/pkg/log"
)

// Router selects the specialist for a user turn.
type Router interface {
	Route(ctx context.Context, message string) (Decision, error)
}

// Oracle is the classification fallback consulted when no trigger rule
// matches. It returns a candidate label that may or may not name a known
// specialist; transport failures are returned as errors and are not
// retried.
type Oracle interface {
	Classify(ctx context.Context, message string, candidates []string) (string, error)
}

// SemanticRouter matches trigger rules first and falls back to the
// classification oracle.
type SemanticRouter struct {
	oracle Oracle
	l      pkgLog.Logger
}

var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter.
// Convention: factory returns the concrete type for internal packages.
func New(oracle Oracle, l pkgLog.Logger) *SemanticRouter {
	return &SemanticRouter{
		oracle: oracle,
		l:      l,
	}
}
