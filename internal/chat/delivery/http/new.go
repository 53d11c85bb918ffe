package http

import (
	"seo-management-agent/internal/orchestrator"
	"seo-management-agent/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c interface{})
	History(c interface{})
	QuickActions(c interface{})
}

type handler struct {
	l   log.Logger
	orc *orchestrator.Orchestrator
}

// New creates a new HTTP handler for the chat surface.
func New(l log.Logger, orc *orchestrator.Orchestrator) *handler {
	return &handler{
		l:   l,
		orc: orc,
	}
}
