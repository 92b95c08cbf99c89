package service

import (
	"context"
	"fmt"

	"github.com/pothoprodorshok/backend/internal/dto"
	"github.com/rs/zerolog/log"
)

type MockTestService interface {
	Generate(ctx context.Context, req dto.MockTestRequest) ([]dto.QuizItem, error)
}

type mockTestService struct {
	gemini GeminiService
}

func NewMockTestService(gemini GeminiService) MockTestService {
	return &mockTestService{gemini: gemini}
}

// Generate produces a mock test in a single shot. Malformed items are
// filtered out item by item; the request only fails when nothing usable
// remains.
func (s *mockTestService) Generate(ctx context.Context, req dto.MockTestRequest) ([]dto.QuizItem, error) {
	raw, err := s.gemini.GenerateText(ctx, buildMockTestPrompt(req))
	if err != nil {
		return nil, err
	}

	items, err := decodeQuizItems(raw)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no valid questions in mock test reply", ErrSchemaInvalid)
	}

	if req.NumQuestions > 0 && len(items) != req.NumQuestions {
		log.Warn().Int("requested", req.NumQuestions).Int("got", len(items)).Msg("Mock test item count differs from request")
	}
	return items, nil
}
