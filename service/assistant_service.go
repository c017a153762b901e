package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/b5-ai/study-companion-be/store"
	"github.com/b5-ai/study-companion-be/types"
	"go.uber.org/zap"
)

// AssistantService answers questions against the current study
// material. It owns the per-question sequencing: refresh the system
// prompt, record the user turn, trim, complete, record the reply.
type AssistantService struct {
	session   *store.Session
	ai        AIService
	imageBase string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewAssistantService(
	session *store.Session,
	ai AIService,
	imageBase string,
	timeout time.Duration,
	logger *zap.Logger,
) *AssistantService {
	return &AssistantService{
		session:   session,
		ai:        ai,
		imageBase: imageBase,
		timeout:   timeout,
		logger:    logger,
	}
}

// Ask routes the question and produces either an image URL or a text
// answer. Completion failures become a user-visible answer string, not
// a protocol error.
func (s *AssistantService) Ask(ctx context.Context, question string) *types.AskResponse {
	if ClassifyIntent(question) == IntentImage {
		return &types.AskResponse{Image: s.imageURL(question)}
	}

	s.session.Lock()
	defer s.session.Unlock()

	messages := s.prepareTurn(question)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.ai.Chat(ctx, messages)
	if err != nil {
		return s.completionError(err)
	}

	s.recordReply(answer)
	return &types.AskResponse{Answer: answer}
}

// AskStream behaves like Ask but reports answer chunks through the
// handler as they arrive. Image requests are answered immediately with
// no streaming.
func (s *AssistantService) AskStream(ctx context.Context, question string, handler types.StreamHandler) *types.AskResponse {
	if ClassifyIntent(question) == IntentImage {
		return &types.AskResponse{Image: s.imageURL(question)}
	}

	s.session.Lock()
	defer s.session.Unlock()

	messages := s.prepareTurn(question)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.ai.ChatStream(ctx, messages, handler)
	if err != nil {
		return s.completionError(err)
	}

	s.recordReply(answer)
	return &types.AskResponse{Answer: answer}
}

// prepareTurn re-derives the system prompt from the live document
// store, appends the user turn and enforces the retention policy.
// Callers hold the session lock.
func (s *AssistantService) prepareTurn(question string) []types.Message {
	s.session.History.UpsertSystem(BuildSystemPrompt(s.session.Documents))
	s.session.History.AppendUser(question)
	s.session.History.Trim()
	return s.session.History.Messages()
}

func (s *AssistantService) recordReply(answer string) {
	s.session.History.AppendAssistant(answer)
	s.session.History.Trim()
}

func (s *AssistantService) completionError(err error) *types.AskResponse {
	s.logger.Error("completion request failed", zap.Error(err))
	return &types.AskResponse{Answer: fmt.Sprintf("⚠️ Error: %s", err.Error())}
}

func (s *AssistantService) imageURL(question string) string {
	return fmt.Sprintf("%s/prompt/%s", s.imageBase, url.PathEscape(question))
}
