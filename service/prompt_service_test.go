package service

import (
	"strings"
	"testing"

	"github.com/b5-ai/study-companion-be/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildSystemPromptEmbedsStudyMaterial(t *testing.T) {
	docs := store.NewDocumentStore(zap.NewNop())
	docs.Put("notes.pdf", "Photosynthesis converts light to energy.")

	prompt := BuildSystemPrompt(docs)

	assert.Contains(t, prompt, "Study Material:")
	assert.Contains(t, prompt, "Photosynthesis converts light to energy.")
	assert.Contains(t, prompt, "created by a team known as B5")
}

func TestBuildSystemPromptReflectsStoreMutation(t *testing.T) {
	docs := store.NewDocumentStore(zap.NewNop())
	docs.Put("a.pdf", "mitochondria content")
	first := BuildSystemPrompt(docs)

	docs.Clear()
	docs.Put("b.pdf", "krebs cycle content")
	second := BuildSystemPrompt(docs)

	assert.Contains(t, first, "mitochondria content")
	assert.NotContains(t, second, "mitochondria content")
	assert.Contains(t, second, "krebs cycle content")
}

func TestBuildSystemPromptBoundsMaterial(t *testing.T) {
	docs := store.NewDocumentStore(zap.NewNop())
	docs.Put("big.pdf", strings.Repeat("z", MaxStudyMaterialChars+5000))

	prompt := BuildSystemPrompt(docs)

	assert.Equal(t, MaxStudyMaterialChars, strings.Count(prompt, "z"))
}

func TestBuildSystemPromptEmptyStore(t *testing.T) {
	docs := store.NewDocumentStore(zap.NewNop())

	prompt := BuildSystemPrompt(docs)

	assert.Contains(t, prompt, "Study Material:")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "Study Material:"))
}
