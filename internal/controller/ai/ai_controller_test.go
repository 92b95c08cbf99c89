package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pothoprodorshok/backend/internal/dto"
	"github.com/pothoprodorshok/backend/internal/history"
	"github.com/pothoprodorshok/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini returns the same canned reply for every call.
type fakeGemini struct {
	reply string
	err   error
}

func (f *fakeGemini) GenerateText(context.Context, string) (string, error) {
	return f.reply, f.err
}

func (f *fakeGemini) Chat(context.Context, []service.ChatTurn, string) (string, error) {
	return f.reply, f.err
}

func newTestRouter(gemini service.GeminiService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	seen := history.NewMemStore()
	ctrl := NewAIController(
		service.NewRoadmapService(gemini),
		service.NewChatService(gemini),
		service.NewTutorService(gemini, seen),
		service.NewMockTestService(gemini),
		service.NewPerformanceService(gemini),
		service.NewScholarshipService(gemini),
	)

	r := gin.New()
	r.POST("/generate-roadmap", ctrl.GenerateRoadmap)
	r.POST("/chat", ctrl.Chat)
	r.POST("/get-question", ctrl.GetQuestion)
	r.POST("/solve-doubt", ctrl.SolveDoubt)
	r.POST("/generate-mock-test", ctrl.GenerateMockTest)
	r.POST("/analyze-performance", ctrl.AnalyzePerformance)
	r.POST("/find-scholarships", ctrl.FindScholarships)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatReturnsReply(t *testing.T) {
	r := newTestRouter(&fakeGemini{reply: "hello"})

	w := doPost(t, r, "/chat", `{"history":[{"sender":"user","text":"hi"}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"hello"}`, w.Body.String())
}

func TestChatEmptyHistoryIs400(t *testing.T) {
	r := newTestRouter(&fakeGemini{reply: "hello"})

	w := doPost(t, r, "/chat", `{"history":[]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestGetQuestionReturnsQuizItem(t *testing.T) {
	r := newTestRouter(&fakeGemini{reply: `{"question":"What is 2+2?","options":["1","2","3","4"],"answer":"4"}`})

	w := doPost(t, r, "/get-question", `{"exam":"JEE","subject":"Maths","topic":"Arithmetic","difficulty":"easy"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var item dto.QuizItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "What is 2+2?", item.Question)
	assert.Len(t, item.Options, 4)
}

func TestRoadmapPersistentGarbageIs500(t *testing.T) {
	r := newTestRouter(&fakeGemini{reply: "I'm sorry, I can't do that"})

	w := doPost(t, r, "/generate-roadmap", `{"goals":"SDE"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestTimeoutGetsClearerMessage(t *testing.T) {
	r := newTestRouter(&fakeGemini{err: service.ErrTimeout})

	w := doPost(t, r, "/solve-doubt", `{"question":"why?"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "took too long")
}

func TestFindScholarshipsEmptyIs404(t *testing.T) {
	r := newTestRouter(&fakeGemini{reply: `[]`})

	w := doPost(t, r, "/find-scholarships", `{"marks":"92%"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyzePerformanceReturnsScoredPayload(t *testing.T) {
	r := newTestRouter(&fakeGemini{reply: `{"analysis":"Nice","strengths":[],"weaknesses":[],"recommendations":[]}`})

	body := `{
		"questions":[
			{"question":"q1","options":["a","b","c","d"],"answer":"a"},
			{"question":"q2","options":["a","b","c","d"],"answer":"b"}
		],
		"userAnswers":{"0":"a"}
	}`
	w := doPost(t, r, "/analyze-performance", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.PerformanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 50, resp.Score)
	assert.Equal(t, 2, resp.TotalQuestions)
	assert.Equal(t, 1, resp.CorrectAnswers)
	assert.Equal(t, "Nice", resp.Analysis)
	require.Len(t, resp.DetailedResults, 2)
	assert.True(t, resp.DetailedResults[0].IsCorrect)
	assert.False(t, resp.DetailedResults[1].IsCorrect)
}

func TestGenerateMockTestFiltersItems(t *testing.T) {
	r := newTestRouter(&fakeGemini{reply: `[
		{"question":"q1","options":["a","b","c","d"],"answer":"a"},
		{"question":"q2","options":["a"],"answer":"a"}
	]`})

	w := doPost(t, r, "/generate-mock-test", `{"exam":"NEET","subject":"Biology","num_questions":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var items []dto.QuizItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "q1", items[0].Question)
}
