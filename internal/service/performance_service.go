package service

import (
	"context"
	"strconv"

	"github.com/pothoprodorshok/backend/internal/dto"
)

// ScoredAttempt is the deterministic, non-AI grading of a mock test attempt.
type ScoredAttempt struct {
	TotalQuestions  int
	CorrectAnswers  int
	Score           int
	DetailedResults []dto.DetailedResult
}

type PerformanceService interface {
	Analyze(ctx context.Context, req dto.PerformanceRequest) (*dto.PerformanceResponse, error)
}

type performanceService struct {
	gemini GeminiService
}

func NewPerformanceService(gemini GeminiService) PerformanceService {
	return &performanceService{gemini: gemini}
}

// ScoreAttempt grades a question set against the user's answers. Missing
// submissions count as incorrect; an empty question set scores zero without
// dividing.
func ScoreAttempt(questions []dto.QuizItem, userAnswers map[string]string) *ScoredAttempt {
	scored := &ScoredAttempt{
		TotalQuestions:  len(questions),
		DetailedResults: make([]dto.DetailedResult, 0, len(questions)),
	}

	for i, q := range questions {
		submitted := userAnswers[strconv.Itoa(i)]
		correct := submitted != "" && submitted == q.Answer
		if correct {
			scored.CorrectAnswers++
		}
		scored.DetailedResults = append(scored.DetailedResults, dto.DetailedResult{
			Question:      q.Question,
			UserAnswer:    submitted,
			CorrectAnswer: q.Answer,
			IsCorrect:     correct,
		})
	}

	if scored.TotalQuestions > 0 {
		scored.Score = 100 * scored.CorrectAnswers / scored.TotalQuestions
	}
	return scored
}

// Analyze grades the attempt locally, then asks the model for a narrative
// built on that breakdown. The deterministic fields are always returned even
// when the narrative degrades.
func (s *performanceService) Analyze(ctx context.Context, req dto.PerformanceRequest) (*dto.PerformanceResponse, error) {
	scored := ScoreAttempt(req.Questions, req.UserAnswers)

	raw, err := s.gemini.GenerateText(ctx, buildAnalysisPrompt(req, scored))
	if err != nil {
		return nil, err
	}
	payload := decodeAnalysis(raw)

	return &dto.PerformanceResponse{
		Score:            scored.Score,
		Accuracy:         scored.Score,
		Analysis:         payload.Analysis,
		Strengths:        emptyIfNil(payload.Strengths),
		Weaknesses:       emptyIfNil(payload.Weaknesses),
		Recommendations:  emptyIfNil(payload.Recommendations),
		TotalQuestions:   scored.TotalQuestions,
		CorrectAnswers:   scored.CorrectAnswers,
		IncorrectAnswers: scored.TotalQuestions - scored.CorrectAnswers,
		DetailedResults:  scored.DetailedResults,
	}, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
