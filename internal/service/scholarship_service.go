package service

import (
	"context"

	"github.com/pothoprodorshok/backend/internal/dto"
)

type ScholarshipService interface {
	Find(ctx context.Context, req dto.ScholarshipRequest) ([]dto.Scholarship, error)
}

type scholarshipService struct {
	gemini GeminiService
}

func NewScholarshipService(gemini GeminiService) ScholarshipService {
	return &scholarshipService{gemini: gemini}
}

// Find asks the model for scholarships matching the profile. An empty result
// is not an error here; the controller maps it to 404.
func (s *scholarshipService) Find(ctx context.Context, req dto.ScholarshipRequest) ([]dto.Scholarship, error) {
	raw, err := s.gemini.GenerateText(ctx, buildScholarshipPrompt(req))
	if err != nil {
		return nil, err
	}
	return decodeScholarships(raw)
}
