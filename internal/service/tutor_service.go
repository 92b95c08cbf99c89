package service

import (
	"context"
	"fmt"

	"github.com/pothoprodorshok/backend/internal/dto"
	"github.com/pothoprodorshok/backend/internal/history"
	"github.com/rs/zerolog/log"
)

type TutorService interface {
	Question(ctx context.Context, req dto.QuestionRequest) (*dto.QuizItem, error)
	SolveDoubt(ctx context.Context, req dto.DoubtRequest) (string, error)
}

type tutorService struct {
	gemini GeminiService
	seen   history.Store
}

func NewTutorService(gemini GeminiService, seen history.Store) TutorService {
	return &tutorService{gemini: gemini, seen: seen}
}

// Question generates one MCQ, retrying on malformed or duplicate output. A
// fresh question is recorded in the seen-questions log before returning.
// When the bound is exhausted, a duplicate is still an acceptable degraded
// answer and is returned unrecorded; a malformed payload is not.
func (s *tutorService) Question(ctx context.Context, req dto.QuestionRequest) (*dto.QuizItem, error) {
	var lastDuplicate *dto.QuizItem
	var lastErr error

	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		prompt := buildQuestionPrompt(req, s.seen.Snapshot())

		raw, err := s.gemini.GenerateText(ctx, prompt)
		if err != nil {
			return nil, err
		}

		item, err := decodeQuizItem(raw)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("Question reply failed validation, retrying")
			lastErr = err
			continue
		}

		if s.seen.Contains(item.Question) {
			log.Warn().Int("attempt", attempt).Str("question", item.Question).Msg("Model repeated a seen question, retrying")
			lastDuplicate = item
			lastErr = ErrDuplicateQuestion
			continue
		}

		if err := s.seen.Append(item.Question); err != nil {
			log.Warn().Err(err).Msg("Could not record question in history")
		}
		return item, nil
	}

	if lastDuplicate != nil {
		log.Warn().Msg("Attempt bound exhausted, returning duplicate question unrecorded")
		return lastDuplicate, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, lastErr)
}

// SolveDoubt returns a Markdown explanation. The reply is free text by
// design, so there is nothing to validate and no retry.
func (s *tutorService) SolveDoubt(ctx context.Context, req dto.DoubtRequest) (string, error) {
	return s.gemini.GenerateText(ctx, buildDoubtPrompt(req))
}
