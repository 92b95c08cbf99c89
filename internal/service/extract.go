package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pothoprodorshok/backend/internal/dto"
	"github.com/rs/zerolog/log"
)

// The model is an untrusted free-text generator: replies routinely arrive
// wrapped in markdown code fences or with stray whitespace, and sometimes as
// outright malformed JSON. Decode failures are classified as ErrSchemaInvalid
// so the retry loop can recover them; they are never a crash.

const requiredOptionCount = 4

// stripCodeFence removes ```json / ``` wrapping from both ends of a reply.
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func decodeQuizItem(raw string) (*dto.QuizItem, error) {
	var item dto.QuizItem
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	if err := validateQuizItem(item); err != nil {
		return nil, err
	}
	return &item, nil
}

func validateQuizItem(item dto.QuizItem) error {
	if item.Question == "" {
		return fmt.Errorf("%w: missing question text", ErrSchemaInvalid)
	}
	if item.Answer == "" {
		return fmt.Errorf("%w: missing answer", ErrSchemaInvalid)
	}
	if len(item.Options) != requiredOptionCount {
		return fmt.Errorf("%w: expected %d options, got %d", ErrSchemaInvalid, requiredOptionCount, len(item.Options))
	}
	for i, opt := range item.Options {
		if opt == "" {
			return fmt.Errorf("%w: option %d is empty", ErrSchemaInvalid, i)
		}
	}
	return nil
}

// decodeQuizItems decodes a mock-test reply, keeping the well-formed items
// and dropping the malformed ones. Only a failure to decode the outer array
// is a schema error; an empty result is the caller's call to make.
func decodeQuizItems(raw string) ([]dto.QuizItem, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}

	items := make([]dto.QuizItem, 0, len(elements))
	for i, element := range elements {
		var item dto.QuizItem
		if err := json.Unmarshal(element, &item); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("Dropping malformed mock test item")
			continue
		}
		if err := validateQuizItem(item); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("Dropping invalid mock test item")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeRoadmap(raw string) ([]dto.RoadmapStep, error) {
	var steps []dto.RoadmapStep
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &steps); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: roadmap is empty", ErrSchemaInvalid)
	}
	for i, step := range steps {
		if step.Title == "" {
			return nil, fmt.Errorf("%w: step %d is missing a title", ErrSchemaInvalid, i)
		}
		if step.Type == "" {
			return nil, fmt.Errorf("%w: step %d is missing a type", ErrSchemaInvalid, i)
		}
	}
	return steps, nil
}

func decodeScholarships(raw string) ([]dto.Scholarship, error) {
	var scholarships []dto.Scholarship
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &scholarships); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	for i, s := range scholarships {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: scholarship %d is missing a name", ErrSchemaInvalid, i)
		}
	}
	return scholarships, nil
}

// analysisPayload is the structured part of a performance-analysis reply.
type analysisPayload struct {
	Analysis        string   `json:"analysis"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// decodeAnalysis parses an analysis reply. A reply that is not valid JSON is
// degraded gracefully: the whole text becomes the narrative and the lists
// stay empty.
func decodeAnalysis(raw string) analysisPayload {
	cleaned := stripCodeFence(raw)

	var payload analysisPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil || payload.Analysis == "" {
		log.Warn().Msg("Analysis reply was not structured JSON, using raw text as narrative")
		return analysisPayload{Analysis: strings.TrimSpace(raw)}
	}
	return payload
}
