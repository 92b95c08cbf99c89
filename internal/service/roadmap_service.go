package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pothoprodorshok/backend/internal/dto"
	"github.com/rs/zerolog/log"
)

// maxGenerationAttempts bounds the retry loop for features that re-invoke
// the model on schema failures.
const maxGenerationAttempts = 3

type RoadmapService interface {
	Generate(ctx context.Context, req dto.RoadmapRequest) ([]dto.RoadmapStep, error)
}

type roadmapService struct {
	gemini GeminiService
}

func NewRoadmapService(gemini GeminiService) RoadmapService {
	return &roadmapService{gemini: gemini}
}

// Generate builds a career roadmap, retrying on malformed model output.
// Exhausting the bound without a valid roadmap is a terminal failure.
func (s *roadmapService) Generate(ctx context.Context, req dto.RoadmapRequest) ([]dto.RoadmapStep, error) {
	prompt := buildRoadmapPrompt(req)

	var lastErr error
	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		raw, err := s.gemini.GenerateText(ctx, prompt)
		if err != nil {
			return nil, err
		}

		steps, err := decodeRoadmap(raw)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("Roadmap reply failed validation, retrying")
			lastErr = err
			continue
		}
		return steps, nil
	}

	if errors.Is(lastErr, ErrSchemaInvalid) {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, lastErr)
	}
	return nil, ErrGenerationFailed
}
