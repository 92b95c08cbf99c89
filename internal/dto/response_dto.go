package dto

import "time"

// RoadmapStep is one step of a generated career roadmap.
type RoadmapStep struct {
	Type        string `json:"type"` // "course", "project" or "skill"
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
}

// QuizItem is a single multiple-choice question. Options always holds
// exactly 4 entries once validated.
type QuizItem struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type DoubtResponse struct {
	Explanation string `json:"explanation"`
}

type Scholarship struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	DirectURL   string `json:"direct_url"`
	SearchURL   string `json:"search_url"`
}

// DetailedResult is the per-question breakdown of a scored mock test.
type DetailedResult struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

type PerformanceResponse struct {
	Score            int              `json:"score"`
	Accuracy         int              `json:"accuracy"`
	Analysis         string           `json:"analysis"`
	Strengths        []string         `json:"strengths"`
	Weaknesses       []string         `json:"weaknesses"`
	Recommendations  []string         `json:"recommendations"`
	TotalQuestions   int              `json:"total_questions"`
	CorrectAnswers   int              `json:"correct_answers"`
	IncorrectAnswers int              `json:"incorrect_answers"`
	DetailedResults  []DetailedResult `json:"detailed_results"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
