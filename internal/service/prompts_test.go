package service

import (
	"testing"

	"github.com/pothoprodorshok/backend/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestLanguageNameFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Bengali", languageName("bn"))
	assert.Equal(t, "English", languageName("en"))
	assert.Equal(t, "English", languageName(""))
	assert.Equal(t, "English", languageName("xx"))
}

func TestBuildQuestionPromptEmbedsSeenQuestions(t *testing.T) {
	seen := []string{"What is inertia?", "Define entropy."}
	prompt := buildQuestionPrompt(dto.QuestionRequest{
		Exam:       "JEE",
		Subject:    "Physics",
		Topic:      "Mechanics",
		Difficulty: "hard",
		Language:   "hi",
	}, seen)

	assert.Contains(t, prompt, "Exam: JEE")
	assert.Contains(t, prompt, "1. What is inertia?")
	assert.Contains(t, prompt, "2. Define entropy.")
	assert.Contains(t, prompt, "Do NOT repeat")
	assert.Contains(t, prompt, "Hindi")
}

func TestBuildQuestionPromptNoSeenQuestions(t *testing.T) {
	prompt := buildQuestionPrompt(dto.QuestionRequest{Exam: "NEET"}, nil)
	assert.Contains(t, prompt, "None")
}

func TestBuildRoadmapPromptToleratesBlankFields(t *testing.T) {
	prompt := buildRoadmapPrompt(dto.RoadmapRequest{Goals: "become a data scientist"})

	assert.Contains(t, prompt, "- Current Skills: \n")
	assert.Contains(t, prompt, "Career Goal: become a data scientist")
	assert.Contains(t, prompt, `"type", "title", "description", "source", "url"`)
	assert.Contains(t, prompt, "English")
}

func TestBuildScholarshipPromptToleratesBlankFields(t *testing.T) {
	prompt := buildScholarshipPrompt(dto.ScholarshipRequest{Region: "West Bengal"})

	assert.Contains(t, prompt, "- Academic Marks: \n")
	assert.Contains(t, prompt, "Home Region: West Bengal")
	assert.Contains(t, prompt, `"direct_url", "search_url"`)
}

func TestBuildAnalysisPromptCarriesBreakdown(t *testing.T) {
	scored := ScoreAttempt([]dto.QuizItem{
		{Question: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
	}, map[string]string{"0": "a"})

	prompt := buildAnalysisPrompt(dto.PerformanceRequest{Language: "bn"}, scored)
	assert.Contains(t, prompt, "score was 100%")
	assert.Contains(t, prompt, `"question": "q1"`)
	assert.Contains(t, prompt, "Bengali")
}

func TestChatPrimerIsUserModelPair(t *testing.T) {
	primer := chatPrimer("ta")
	assert.Len(t, primer, 2)
	assert.Equal(t, "user", primer[0].Role)
	assert.Equal(t, "model", primer[1].Role)
	assert.Contains(t, primer[0].Text, "Tamil")
}
