package service

import (
	"context"
	"errors"
	"strings"

	"github.com/b5-ai/study-companion-be/types"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiService is the alternative completion provider, selected with
// `provider: gemini` in the config.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("no API key provided")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (s *GeminiService) Chat(ctx context.Context, messages []types.Message) (string, error) {
	chat, prompt := s.startChat(messages)
	resp, err := chat.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String(), nil
}

func (s *GeminiService) ChatStream(ctx context.Context, messages []types.Message, handler types.StreamHandler) (string, error) {
	chat, prompt := s.startChat(messages)
	iter := chat.SendMessageStream(ctx, genai.Text(prompt))

	var sb strings.Builder
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			return sb.String(), nil
		}
		if err != nil {
			return sb.String(), err
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					sb.WriteString(string(text))
					handler(string(text))
				}
			}
		}
	}
}

// startChat maps the conversation onto a Gemini chat session. The
// system turn becomes the model's system instruction, assistant turns
// map to the "model" role, and the final user turn is the prompt.
func (s *GeminiService) startChat(messages []types.Message) (*genai.ChatSession, string) {
	history := make([]*genai.Content, 0, len(messages))
	prompt := ""
	for _, msg := range messages {
		switch msg.Role {
		case types.RoleSystem:
			s.model.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(msg.Content)},
			}
		case types.RoleAssistant:
			history = append(history, &genai.Content{
				Parts: []genai.Part{genai.Text(msg.Content)},
				Role:  "model",
			})
		default:
			history = append(history, &genai.Content{
				Parts: []genai.Part{genai.Text(msg.Content)},
				Role:  "user",
			})
		}
	}
	if n := len(history); n > 0 && history[n-1].Role == "user" {
		if text, ok := history[n-1].Parts[0].(genai.Text); ok {
			prompt = string(text)
		}
		history = history[:n-1]
	}

	chat := s.model.StartChat()
	chat.History = history
	return chat, prompt
}
