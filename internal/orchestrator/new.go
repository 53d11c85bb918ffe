package orchestrator

import (
	"seo-management-agent/internal/router"
	"seo-management-agent/internal/seo"
	"seo-management-agent/internal/session"
	pkgLog "seo-management-agent/pkg/log"
)

// Orchestrator coordinates one user turn: ensure the session, route the
// message, dispatch to the selected specialist, store the findings and
// the reply.
type Orchestrator struct {
	l      pkgLog.Logger
	router router.Router
	uc     seo.UseCase
	store  *session.Store
}

// New creates a new Orchestrator.
func New(l pkgLog.Logger, r router.Router, uc seo.UseCase, store *session.Store) *Orchestrator {
	return &Orchestrator{
		l:      l,
		router: r,
		uc:     uc,
		store:  store,
	}
}
