package store

import (
	"sync"

	"go.uber.org/zap"
)

// Session bundles the document store and the conversation behind a
// single mutex. Gin serves requests concurrently, so every request
// that touches either structure must hold the lock for the duration of
// its mutation to keep the turn ordering intact.
type Session struct {
	mu        sync.Mutex
	Documents *DocumentStore
	History   *Conversation
}

func NewSession(logger *zap.Logger) *Session {
	return &Session{
		Documents: NewDocumentStore(logger),
		History:   NewConversation(),
	}
}

func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

// ResetDialogue empties the conversation, keeping documents.
func (s *Session) ResetDialogue() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.History.Reset()
}

// ResetAll empties the conversation and the document store as one
// atomic reset.
func (s *Session) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.History.Reset()
	s.Documents.Clear()
}
