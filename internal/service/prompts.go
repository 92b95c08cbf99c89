package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pothoprodorshok/backend/internal/dto"
)

// Prompt construction for every AI feature. Each builder is a pure mapping
// from a request to the instruction string sent to the model: persona first,
// then the task, the explicit output schema, the language constraint, and
// for question generation a verbatim list of already-seen questions as a
// negative constraint. Absent request fields interpolate as blanks.

func languageInstruction(code string) string {
	return fmt.Sprintf("Respond ONLY in %s. All generated text must be in %s.", languageName(code), languageName(code))
}

// formatSeenQuestions renders the duplicate-avoidance list for a prompt.
func formatSeenQuestions(seen []string) string {
	if len(seen) == 0 {
		return "None"
	}
	var b strings.Builder
	for i, q := range seen {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildRoadmapPrompt(req dto.RoadmapRequest) string {
	var b strings.Builder
	b.WriteString("Act as an expert career coach. A user has the following profile:\n")
	fmt.Fprintf(&b, "- Current Skills: %s\n", req.Skills)
	fmt.Fprintf(&b, "- Interests: %s\n", req.Interests)
	fmt.Fprintf(&b, "- Career Goal: %s\n", req.Goals)
	fmt.Fprintf(&b, "- Current Status: %s\n", req.Status)
	fmt.Fprintf(&b, "- Education: %s\n", req.Education)
	fmt.Fprintf(&b, "- Target Companies: %s\n", req.TargetCompanies)
	b.WriteString("\nGenerate a 4-step career roadmap for this user. For each step, provide a type (course, project, or skill), a title, a brief description, a source (like Coursera, GitHub, etc.), and a real, valid URL to that resource.\n")
	b.WriteString("Return the response ONLY as a valid JSON array of objects. Each object must have exactly these string keys: \"type\", \"title\", \"description\", \"source\", \"url\".\n")
	b.WriteString("Do not include any prose, markdown fencing, or commentary around the JSON.\n")
	b.WriteString(languageInstruction(req.Language))
	return b.String()
}

func buildQuestionPrompt(req dto.QuestionRequest, seen []string) string {
	var b strings.Builder
	b.WriteString("Act as an AI Tutor for Indian competitive exams.\n")
	b.WriteString("Generate one multiple-choice question (MCQ) for the following criteria:\n")
	fmt.Fprintf(&b, "- Exam: %s\n", req.Exam)
	fmt.Fprintf(&b, "- Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "- Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "- Difficulty: %s\n", req.Difficulty)
	b.WriteString("\nDo NOT repeat any of these previously asked questions:\n")
	b.WriteString(formatSeenQuestions(seen))
	b.WriteString("\n\nThe correct answer must exactly match one of the four options.\n")
	b.WriteString("Return the response ONLY as a single valid JSON object with three keys: \"question\", \"options\" (an array of exactly 4 strings), and \"answer\".\n")
	b.WriteString("Do not include any prose, markdown fencing, or commentary around the JSON.\n")
	b.WriteString(languageInstruction(req.Language))
	return b.String()
}

func buildDoubtPrompt(req dto.DoubtRequest) string {
	var b strings.Builder
	b.WriteString("Act as an expert AI Tutor for students in India preparing for exams like JEE and NEET.\n")
	fmt.Fprintf(&b, "A student has the following doubt: %q\n", req.Question)
	b.WriteString("Provide a clear, step-by-step explanation to solve the doubt.\n")
	b.WriteString("Use simple language. Use Markdown for formatting, like **bolding key terms** and using * for list items.\n")
	b.WriteString("Keep the explanation concise and focused on the core concept.\n")
	b.WriteString(languageInstruction(req.Language))
	return b.String()
}

func buildMockTestPrompt(req dto.MockTestRequest) string {
	count := req.NumQuestions
	if count <= 0 {
		count = 5
	}

	var b strings.Builder
	b.WriteString("Act as an AI question paper generator for Indian competitive exams.\n")
	fmt.Fprintf(&b, "Generate a mock test with exactly %d multiple-choice questions (MCQs) for the following criteria:\n", count)
	fmt.Fprintf(&b, "- Exam: %s\n", req.Exam)
	fmt.Fprintf(&b, "- Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "- Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "- Difficulty: %s\n", req.Difficulty)
	b.WriteString("\nEnsure the questions cover a range of important topics within the subject and have varying difficulty.\n")
	b.WriteString("Return the response ONLY as a valid JSON array of objects. Each object must have three keys: \"question\", \"options\" (an array of exactly 4 strings), and \"answer\".\n")
	b.WriteString("The correct answer must exactly match one of the four options.\n")
	b.WriteString("Do not include any prose, markdown fencing, or commentary around the JSON.\n")
	b.WriteString(languageInstruction(req.Language))
	return b.String()
}

func buildAnalysisPrompt(req dto.PerformanceRequest, scored *ScoredAttempt) string {
	breakdown, _ := json.MarshalIndent(scored.DetailedResults, "", "  ")

	var b strings.Builder
	b.WriteString("Act as an AI performance analyst for a student who just completed a mock test.\n")
	fmt.Fprintf(&b, "The student's score was %d%% (%d of %d correct).\n", scored.Score, scored.CorrectAnswers, scored.TotalQuestions)
	b.WriteString("Here is the per-question breakdown of the attempt:\n")
	b.Write(breakdown)
	b.WriteString("\n\nProvide a brief, encouraging analysis of the student's performance.\n")
	b.WriteString("Return the response ONLY as a single valid JSON object with these keys:\n")
	b.WriteString("\"analysis\" (a short Markdown-formatted narrative), \"strengths\" (array of strings), \"weaknesses\" (array of strings), \"recommendations\" (array of strings with simple, actionable tips).\n")
	b.WriteString("Do not include any prose, markdown fencing, or commentary around the JSON.\n")
	b.WriteString(languageInstruction(req.Language))
	return b.String()
}

func buildScholarshipPrompt(req dto.ScholarshipRequest) string {
	var b strings.Builder
	b.WriteString("Act as a scholarship advisor for students. A student has the following profile:\n")
	fmt.Fprintf(&b, "- Academic Marks: %s\n", req.Marks)
	fmt.Fprintf(&b, "- Annual Family Income (in INR): %s\n", req.Income)
	fmt.Fprintf(&b, "- Student's Home Region: %s\n", req.Region)
	fmt.Fprintf(&b, "- Student's Religion: %s\n", req.Religion)
	fmt.Fprintf(&b, "- Desired Study Destination: %s\n", req.Destination)
	b.WriteString("\nBased on this profile, find 3-4 relevant scholarships. For each scholarship, provide its name, a brief description, key eligibility criteria, a direct, clean, and valid URL to the application or information page, and a fallback web-search URL for the scholarship name.\n")
	b.WriteString("The URL strings must not contain any extra text, notes, or parentheses.\n")
	b.WriteString("Return the response ONLY as a valid JSON array of objects. Each object must have exactly these string keys: \"name\", \"description\", \"eligibility\", \"direct_url\", \"search_url\".\n")
	b.WriteString("Do not include any prose, markdown fencing, or commentary around the JSON.\n")
	b.WriteString(languageInstruction(req.Language))
	return b.String()
}

// chatPrimer is the synthetic turn pair prepended to a chat history to steer
// the reply language. It is never shown to the user.
func chatPrimer(language string) []ChatTurn {
	name := languageName(language)
	return []ChatTurn{
		{Role: "user", Text: fmt.Sprintf("You are a helpful career guidance assistant. Reply to everything that follows in %s, keeping answers clear and encouraging.", name)},
		{Role: "model", Text: fmt.Sprintf("Understood. I will reply in %s.", name)},
	}
}
