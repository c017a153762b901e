package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/b5-ai/study-companion-be/store"
	"github.com/b5-ai/study-companion-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAI struct {
	reply  string
	chunks []string
	err    error

	calls        int
	gotMessages  []types.Message
	streamCalled bool
}

func (f *fakeAI) Chat(_ context.Context, messages []types.Message) (string, error) {
	f.calls++
	f.gotMessages = messages
	return f.reply, f.err
}

func (f *fakeAI) ChatStream(_ context.Context, messages []types.Message, handler types.StreamHandler) (string, error) {
	f.calls++
	f.streamCalled = true
	f.gotMessages = messages
	if f.err != nil {
		return "", f.err
	}
	full := ""
	for _, chunk := range f.chunks {
		handler(chunk)
		full += chunk
	}
	return full, nil
}

func newTestAssistant(t *testing.T, ai AIService) (*AssistantService, *store.Session) {
	t.Helper()
	session := store.NewSession(zap.NewNop())
	assistant := NewAssistantService(session, ai, "https://image.pollinations.ai", time.Minute, zap.NewNop())
	return assistant, session
}

func TestAskImageRequestLeavesConversationUntouched(t *testing.T) {
	ai := &fakeAI{reply: "unused"}
	assistant, session := newTestAssistant(t, ai)

	result := assistant.Ask(context.Background(), "draw a flowchart of mitosis")

	assert.Equal(t, "https://image.pollinations.ai/prompt/draw%20a%20flowchart%20of%20mitosis", result.Image)
	assert.Empty(t, result.Answer)
	assert.Equal(t, 0, session.History.Len())
	assert.Equal(t, 0, ai.calls)
}

func TestAskAnswersFromStudyMaterial(t *testing.T) {
	ai := &fakeAI{reply: "Photosynthesis converts light to energy."}
	assistant, session := newTestAssistant(t, ai)
	session.Documents.Put("notes.pdf", "Photosynthesis converts light to energy.")

	result := assistant.Ask(context.Background(), "summarize the file")

	assert.Equal(t, "Photosynthesis converts light to energy.", result.Answer)
	assert.Empty(t, result.Image)

	// Provider saw system + user before the reply existed
	require.Equal(t, 2, len(ai.gotMessages))
	assert.Equal(t, types.RoleSystem, ai.gotMessages[0].Role)
	assert.Contains(t, ai.gotMessages[0].Content, "Photosynthesis converts light to energy.")
	assert.Equal(t, "summarize the file", ai.gotMessages[1].Content)

	// Reply recorded afterwards
	assert.Equal(t, 3, session.History.Len())
}

func TestAskRefreshesSystemPromptEachTurn(t *testing.T) {
	ai := &fakeAI{reply: "ok"}
	assistant, session := newTestAssistant(t, ai)

	session.Documents.Put("a.pdf", "first material")
	assistant.Ask(context.Background(), "question one")

	session.Documents.Clear()
	session.Documents.Put("b.pdf", "second material")
	assistant.Ask(context.Background(), "question two")

	assert.Contains(t, ai.gotMessages[0].Content, "second material")
	assert.NotContains(t, ai.gotMessages[0].Content, "first material")
}

func TestAskConvertsCompletionFailureToAnswer(t *testing.T) {
	ai := &fakeAI{err: errors.New("rate limited")}
	assistant, session := newTestAssistant(t, ai)

	result := assistant.Ask(context.Background(), "summarize the file")

	assert.Equal(t, "⚠️ Error: rate limited", result.Answer)
	// No assistant turn is recorded for a failed completion
	assert.Equal(t, 2, session.History.Len())
}

func TestAskStreamReportsChunksAndRecordsReply(t *testing.T) {
	ai := &fakeAI{chunks: []string{"The ", "Krebs ", "cycle"}}
	assistant, session := newTestAssistant(t, ai)

	var streamed []string
	result := assistant.AskStream(context.Background(), "explain the krebs cycle", func(chunk string) {
		streamed = append(streamed, chunk)
	})

	assert.True(t, ai.streamCalled)
	assert.Equal(t, []string{"The ", "Krebs ", "cycle"}, streamed)
	assert.Equal(t, "The Krebs cycle", result.Answer)
	assert.Equal(t, 3, session.History.Len())
}

func TestAskStreamImageRequestSkipsStreaming(t *testing.T) {
	ai := &fakeAI{chunks: []string{"unused"}}
	assistant, session := newTestAssistant(t, ai)

	result := assistant.AskStream(context.Background(), "generate image of a cell", func(string) {
		t.Fatal("image requests must not stream")
	})

	assert.NotEmpty(t, result.Image)
	assert.Equal(t, 0, session.History.Len())
	assert.False(t, ai.streamCalled)
}

func TestAskTrimsLongDialogues(t *testing.T) {
	ai := &fakeAI{reply: "answer"}
	assistant, session := newTestAssistant(t, ai)

	for i := 0; i < 25; i++ {
		assistant.Ask(context.Background(), "another question")
	}

	assert.Equal(t, store.MaxDialogueTurns+1, session.History.Len())
	msgs := session.History.Messages()
	assert.Equal(t, types.RoleSystem, msgs[0].Role)
}
