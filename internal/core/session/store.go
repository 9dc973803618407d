package session

import (
	"sync"

	"github.com/google/uuid"
)

// Turn is one role-tagged conversation entry.
type Turn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	AgentType string `json:"agent_type,omitempty"`
}

// Store holds the in-memory conversation logs, keyed by session id.
// Logs live for the process lifetime and are never trimmed; that is the
// intended behavior, an eviction policy can be bolted on here without
// touching callers.
type Store struct {
	mu   sync.RWMutex
	logs map[string][]Turn
}

func NewStore() *Store {
	return &Store{
		logs: make(map[string][]Turn),
	}
}

// GetOrCreate resolves a session id, minting a fresh one when id is
// empty, and makes sure its log exists. The returned id must go back to
// the client so follow-up calls resume the same log.
func (s *Store) GetOrCreate(id string) string {
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.logs[id]; !ok {
		s.logs[id] = []Turn{}
	}
	return id
}

// AppendExchange records one user/assistant exchange. Both turns land
// under a single lock hold, so each request's two-turn append is atomic
// with respect to concurrent requests on the same session.
func (s *Store) AppendExchange(id, userMessage, response, agentType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs[id] = append(s.logs[id],
		Turn{Role: "user", Content: userMessage},
		Turn{Role: "assistant", Content: response, AgentType: agentType},
	)
}

// History returns a copy of the session's log.
func (s *Store) History(id string) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log, ok := s.logs[id]
	if !ok {
		return nil
	}
	out := make([]Turn, len(log))
	copy(out, log)
	return out
}

// Len reports the number of turns in a session's log.
func (s *Store) Len(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs[id])
}
