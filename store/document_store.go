// Package store owns the process-wide session state: the extracted
// document texts and the conversation log. Both are unsynchronized on
// their own; Session serializes access for concurrent hosts.
package store

import (
	"strings"

	"go.uber.org/zap"
)

// DocumentStore maps a normalized document id to its extracted text,
// preserving insertion order. Ids are lowercased so re-uploads that
// differ only in case overwrite instead of duplicating.
type DocumentStore struct {
	ids    []string
	texts  map[string]string
	logger *zap.Logger
}

func NewDocumentStore(logger *zap.Logger) *DocumentStore {
	return &DocumentStore{
		texts:  make(map[string]string),
		logger: logger,
	}
}

// Put stores text under the lowercased id, silently replacing any
// previous entry. Callers must never pass empty text; the upload flow
// rejects documents with no extractable text before reaching here.
func (s *DocumentStore) Put(id, text string) {
	key := strings.ToLower(id)
	if _, exists := s.texts[key]; exists {
		s.logger.Warn("overwriting existing document", zap.String("id", key))
	} else {
		s.ids = append(s.ids, key)
	}
	s.texts[key] = text
}

// Remove deletes the entry for the lowercased id, reporting whether it
// was present.
func (s *DocumentStore) Remove(id string) bool {
	key := strings.ToLower(id)
	if _, exists := s.texts[key]; !exists {
		return false
	}
	delete(s.texts, key)
	for i, existing := range s.ids {
		if existing == key {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

func (s *DocumentStore) Clear() {
	s.ids = nil
	s.texts = make(map[string]string)
}

// List returns the stored ids in insertion order.
func (s *DocumentStore) List() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *DocumentStore) Len() int {
	return len(s.ids)
}

// CombinedText joins every stored text in insertion order with a blank
// line and hard-cuts the result at limit characters.
func (s *DocumentStore) CombinedText(limit int) string {
	parts := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		parts = append(parts, s.texts[id])
	}
	combined := strings.Join(parts, "\n\n")
	runes := []rune(combined)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return combined
}
