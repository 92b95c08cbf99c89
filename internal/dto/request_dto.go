package dto

// RoadmapRequest carries the user's profile for career roadmap generation.
// All fields are free text; absent fields default to empty strings.
type RoadmapRequest struct {
	Skills          string `json:"skills"`
	Interests       string `json:"interests"`
	Goals           string `json:"goals"`
	Status          string `json:"status"`
	Education       string `json:"education"`
	TargetCompanies string `json:"targetCompanies"`
	Language        string `json:"language"`
}

type ChatMessage struct {
	Sender string `json:"sender"` // "user" or "bot"
	Text   string `json:"text"`
}

type ChatRequest struct {
	History  []ChatMessage `json:"history"`
	Language string        `json:"language"`
}

type QuestionRequest struct {
	Exam       string `json:"exam"`
	Subject    string `json:"subject"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Language   string `json:"language"`
}

type DoubtRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

type MockTestRequest struct {
	Exam         string `json:"exam"`
	Subject      string `json:"subject"`
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
	Difficulty   string `json:"difficulty"`
	Language     string `json:"language"`
}

// PerformanceRequest holds a completed mock test and the user's answers,
// keyed by question index ("0", "1", ...).
type PerformanceRequest struct {
	Questions   []QuizItem        `json:"questions"`
	UserAnswers map[string]string `json:"userAnswers"`
	Language    string            `json:"language"`
}

type ScholarshipRequest struct {
	Marks       string `json:"marks"`
	Income      string `json:"income"`
	Region      string `json:"region"`
	Destination string `json:"destination"`
	Religion    string `json:"religion"`
	Language    string `json:"language"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
