package service

import (
	"context"

	"github.com/b5-ai/study-companion-be/types"
)

// AIService is the external chat-completion collaborator. ChatStream
// reports chunks as they arrive and returns the full reply so callers
// can record it in the conversation log.
type AIService interface {
	Chat(ctx context.Context, messages []types.Message) (string, error)
	ChatStream(ctx context.Context, messages []types.Message, handler types.StreamHandler) (string, error)
}
