package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *DocumentStore {
	t.Helper()
	return NewDocumentStore(zap.NewNop())
}

func TestDocumentStorePutNormalizesAndOrders(t *testing.T) {
	s := newTestStore(t)
	s.Put("Notes.PDF", "alpha")
	s.Put("slides.pdf", "beta")

	assert.Equal(t, []string{"notes.pdf", "slides.pdf"}, s.List())
	assert.Equal(t, 2, s.Len())
}

func TestDocumentStorePutOverwrites(t *testing.T) {
	s := newTestStore(t)
	s.Put("notes.pdf", "first")
	s.Put("NOTES.pdf", "second")

	require.Equal(t, []string{"notes.pdf"}, s.List())
	assert.Equal(t, "second", s.CombinedText(100))
}

func TestDocumentStoreRemove(t *testing.T) {
	s := newTestStore(t)
	s.Put("a.pdf", "one")
	s.Put("b.pdf", "two")

	assert.True(t, s.Remove("A.PDF"))
	assert.False(t, s.Remove("a.pdf"))
	assert.Equal(t, []string{"b.pdf"}, s.List())
}

func TestDocumentStoreClear(t *testing.T) {
	s := newTestStore(t)
	s.Put("a.pdf", "one")
	s.Clear()

	assert.Empty(t, s.List())
	assert.Equal(t, "", s.CombinedText(100))
}

func TestCombinedTextJoinsInInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	s.Put("b.pdf", "second doc")
	s.Put("a.pdf", "first doc")

	assert.Equal(t, "second doc\n\nfirst doc", s.CombinedText(100))
}

func TestCombinedTextHardCut(t *testing.T) {
	s := newTestStore(t)
	s.Put("a.pdf", strings.Repeat("x", 50))
	s.Put("b.pdf", strings.Repeat("y", 50))

	for _, limit := range []int{0, 1, 10, 102, 1000} {
		got := s.CombinedText(limit)
		assert.LessOrEqual(t, len([]rune(got)), limit)
	}
	// Full text fits inside a generous limit
	assert.Len(t, s.CombinedText(1000), 102)
}

func TestCombinedTextCutsOnRunes(t *testing.T) {
	s := newTestStore(t)
	s.Put("a.pdf", "日本語テキスト")

	got := s.CombinedText(3)
	assert.Equal(t, "日本語", got)
}
