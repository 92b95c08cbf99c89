package service

import (
	"context"

	"github.com/pothoprodorshok/backend/internal/dto"
)

type ChatService interface {
	Reply(ctx context.Context, req dto.ChatRequest) (string, error)
}

type chatService struct {
	gemini GeminiService
}

func NewChatService(gemini GeminiService) ChatService {
	return &chatService{gemini: gemini}
}

// Reply sends the newest user turn against the prior conversation. The
// language-steering primer pair is prepended to the history but never
// appears in the visible transcript.
func (s *chatService) Reply(ctx context.Context, req dto.ChatRequest) (string, error) {
	if len(req.History) == 0 {
		return "", ErrEmptyHistory
	}

	turns := chatPrimer(req.Language)
	for _, msg := range req.History[:len(req.History)-1] {
		role := "model"
		if msg.Sender == "user" {
			role = "user"
		}
		turns = append(turns, ChatTurn{Role: role, Text: msg.Text})
	}

	current := req.History[len(req.History)-1].Text
	return s.gemini.Chat(ctx, turns, current)
}
