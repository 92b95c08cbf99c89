package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pothoprodorshok/backend/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ChatTurn is one prior turn of a conversation, role "user" or "model".
type ChatTurn struct {
	Role string
	Text string
}

// GeminiService wraps the Gemini text-generation API. It is the only
// blocking collaborator in the request path; every call is bounded by the
// configured wall-clock timeout.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, history []ChatTurn, message string) (string, error)
}

type geminiService struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiService(cfg *config.Config) (GeminiService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiService will be non-functional.")
		return &geminiService{timeout: time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Gemini.Model)
	model.SetTemperature(float32(cfg.Gemini.Temperature))
	model.SetMaxOutputTokens(int32(cfg.Gemini.MaxOutputTokens))

	return &geminiService{
		model:   model,
		timeout: time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
	}, nil
}

func (s *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.model == nil {
		return "", fmt.Errorf("%w: gemini client not initialized", ErrUpstream)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyUpstreamError(ctx, err)
	}
	return collectText(resp)
}

func (s *geminiService) Chat(ctx context.Context, history []ChatTurn, message string) (string, error) {
	if s.model == nil {
		return "", fmt.Errorf("%w: gemini client not initialized", ErrUpstream)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cs := s.model.StartChat()
	cs.History = make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", classifyUpstreamError(ctx, err)
	}
	return collectText(resp)
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response")
		return "", fmt.Errorf("%w: gemini returned no content", ErrUpstream)
	}

	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", fmt.Errorf("%w: gemini returned no text content", ErrUpstream)
	}
	return text, nil
}

func classifyUpstreamError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Error().Err(err).Msg("Gemini API call timed out")
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	log.Error().Err(err).Msg("Gemini API error")
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
