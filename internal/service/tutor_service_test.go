package service

import (
	"context"
	"testing"

	"github.com/pothoprodorshok/backend/internal/dto"
	"github.com/pothoprodorshok/backend/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionFirstShotSuccessIsRecorded(t *testing.T) {
	seen := history.NewMemStore()
	gemini := &stubGemini{replies: []string{validQuizJSON}}
	svc := NewTutorService(gemini, seen)

	item, err := svc.Question(context.Background(), dto.QuestionRequest{Exam: "JEE"})
	require.NoError(t, err)
	assert.Equal(t, "What is 2+2?", item.Question)
	assert.True(t, seen.Contains("What is 2+2?"))
	assert.Equal(t, 1, gemini.calls)
}

func TestQuestionRetriesOnMalformedOutput(t *testing.T) {
	seen := history.NewMemStore()
	gemini := &stubGemini{replies: []string{"not json", validQuizJSON}}
	svc := NewTutorService(gemini, seen)

	item, err := svc.Question(context.Background(), dto.QuestionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "What is 2+2?", item.Question)
	assert.Equal(t, 2, gemini.calls)
}

func TestQuestionDuplicateToleratedAtBoundButNotRecorded(t *testing.T) {
	seen := history.NewMemStore()
	require.NoError(t, seen.Append("What is 2+2?"))

	// The stub always reproduces the already-seen question.
	gemini := &stubGemini{replies: []string{validQuizJSON}}
	svc := NewTutorService(gemini, seen)

	item, err := svc.Question(context.Background(), dto.QuestionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "What is 2+2?", item.Question)
	assert.Equal(t, 3, gemini.calls)
	// Degraded success: the duplicate is returned but never re-recorded.
	assert.Equal(t, []string{"What is 2+2?"}, seen.Snapshot())
}

func TestQuestionSchemaInvalidAtBoundIsTerminal(t *testing.T) {
	gemini := &stubGemini{replies: []string{"garbage"}}
	svc := NewTutorService(gemini, history.NewMemStore())

	_, err := svc.Question(context.Background(), dto.QuestionRequest{})
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Equal(t, 3, gemini.calls)
}

func TestQuestionUpstreamErrorIsNotRetried(t *testing.T) {
	gemini := &stubGemini{err: ErrUpstream}
	svc := NewTutorService(gemini, history.NewMemStore())

	_, err := svc.Question(context.Background(), dto.QuestionRequest{})
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Len(t, gemini.prompts, 1)
}

func TestQuestionPromptCarriesHistorySnapshot(t *testing.T) {
	seen := history.NewMemStore()
	require.NoError(t, seen.Append("Define entropy."))

	gemini := &stubGemini{replies: []string{validQuizJSON}}
	svc := NewTutorService(gemini, seen)

	_, err := svc.Question(context.Background(), dto.QuestionRequest{})
	require.NoError(t, err)
	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "Define entropy.")
}

func TestSolveDoubtPassesThroughFreeText(t *testing.T) {
	gemini := &stubGemini{replies: []string{"**Step 1:** use F = ma."}}
	svc := NewTutorService(gemini, history.NewMemStore())

	explanation, err := svc.SolveDoubt(context.Background(), dto.DoubtRequest{Question: "Why F = ma?"})
	require.NoError(t, err)
	assert.Equal(t, "**Step 1:** use F = ma.", explanation)
	assert.Contains(t, gemini.prompts[0], "Why F = ma?")
}
