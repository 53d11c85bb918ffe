// Package session keeps per-conversation state for the lifetime of the
// process: the ordered turns and each specialist's last findings payload.
// Nothing survives a restart.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"seo-management-agent/internal/model"
	"seo-management-agent/internal/seo"
)

// Conversation is one chat session: an opaque identifier, the turn
// history, and one findings slot per specialist (overwritten on each
// new invocation, not versioned).
type Conversation struct {
	ID      string
	Turns   []model.Turn
	results map[model.Specialist]seo.Findings
}

// Store maps session identifiers to conversations. Idle conversations
// are evicted by TTL; the capacity bound protects against session-id
// churn from misbehaving clients.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Conversation]
}

var _ seo.ResultReader = (*Store)(nil)

// New creates a session store holding at most capacity conversations,
// each expiring after ttl of inactivity.
func New(capacity int, ttl time.Duration) *Store {
	return &Store{
		sessions: expirable.NewLRU[string, *Conversation](capacity, nil, ttl),
	}
}

// Create mints a new conversation and returns its identifier.
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.sessions.Add(id, &Conversation{
		ID:      id,
		results: make(map[model.Specialist]seo.Findings),
	})
	return id
}

// Exists reports whether id names a live conversation.
func (s *Store) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Contains(id)
}

// AppendTurn records a turn on the conversation. Unknown ids are a
// no-op; the orchestrator ensures the session exists first.
func (s *Store) AppendTurn(id string, turn model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions.Get(id)
	if !ok {
		return
	}
	conv.Turns = append(conv.Turns, turn)
}

// SetResult overwrites the specialist's findings slot on the conversation.
func (s *Store) SetResult(id string, specialist model.Specialist, findings seo.Findings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions.Get(id)
	if !ok {
		return
	}
	conv.results[specialist] = findings
}

// Result returns the specialist's last findings for the conversation.
func (s *Store) Result(id string, specialist model.Specialist) (seo.Findings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions.Get(id)
	if !ok {
		return seo.Findings{}, false
	}
	findings, ok := conv.results[specialist]
	return findings, ok
}

// History returns up to limit most recent turns, oldest first.
// limit <= 0 returns the whole history.
func (s *Store) History(id string, limit int) []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.sessions.Get(id)
	if !ok {
		return nil
	}

	turns := conv.Turns
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	out := make([]model.Turn, len(turns))
	copy(out, turns)
	return out
}
