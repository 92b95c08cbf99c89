package service

import "context"

// stubGemini replays canned replies and records what it was asked.
type stubGemini struct {
	replies []string
	err     error

	calls       int
	prompts     []string
	chatHistory []ChatTurn
	chatMessage string
}

func (s *stubGemini) GenerateText(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	reply := s.replies[len(s.replies)-1]
	if s.calls < len(s.replies) {
		reply = s.replies[s.calls]
	}
	s.calls++
	return reply, nil
}

func (s *stubGemini) Chat(_ context.Context, history []ChatTurn, message string) (string, error) {
	s.chatHistory = history
	s.chatMessage = message
	if s.err != nil {
		return "", s.err
	}
	s.calls++
	return s.replies[0], nil
}
