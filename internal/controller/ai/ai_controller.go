package ai

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pothoprodorshok/backend/internal/dto"
	"github.com/pothoprodorshok/backend/internal/service"
	"github.com/rs/zerolog/log"
)

type AIController struct {
	roadmapService     service.RoadmapService
	chatService        service.ChatService
	tutorService       service.TutorService
	mockTestService    service.MockTestService
	performanceService service.PerformanceService
	scholarshipService service.ScholarshipService
}

func NewAIController(
	roadmap service.RoadmapService,
	chat service.ChatService,
	tutor service.TutorService,
	mockTest service.MockTestService,
	performance service.PerformanceService,
	scholarship service.ScholarshipService,
) *AIController {
	return &AIController{
		roadmapService:     roadmap,
		chatService:        chat,
		tutorService:       tutor,
		mockTestService:    mockTest,
		performanceService: performance,
		scholarshipService: scholarship,
	}
}

// respondError maps service errors to the {"error": msg} failure shape.
// Upstream details stay in the server log; the caller gets the fallback
// message, except timeouts which deserve a clearer one.
func respondError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrEmptyHistory):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrTimeout):
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "The AI took too long to respond. Please try again."})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

// GenerateRoadmap godoc
// @Summary Generate a 4-step career roadmap from a user profile
// @Tags AI
// @Accept json
// @Produce json
// @Param profile body dto.RoadmapRequest true "User profile"
// @Success 200 {array} dto.RoadmapStep
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-roadmap [post]
func (c *AIController) GenerateRoadmap(ctx *gin.Context) {
	var req dto.RoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	steps, err := c.roadmapService.Generate(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Roadmap generation failed")
		respondError(ctx, err, "Failed to parse AI response or generate content")
		return
	}
	ctx.JSON(http.StatusOK, steps)
}

// Chat godoc
// @Summary Continue a career-guidance conversation
// @Tags AI
// @Accept json
// @Produce json
// @Param conversation body dto.ChatRequest true "Conversation history, newest turn last"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat [post]
func (c *AIController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	reply, err := c.chatService.Reply(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Chat reply failed")
		respondError(ctx, err, "Sorry, I couldn't process that message.")
		return
	}
	ctx.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}

// GetQuestion godoc
// @Summary Generate one multiple-choice practice question
// @Tags AI
// @Accept json
// @Produce json
// @Param criteria body dto.QuestionRequest true "Exam, subject, topic and difficulty"
// @Success 200 {object} dto.QuizItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /get-question [post]
func (c *AIController) GetQuestion(ctx *gin.Context) {
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	item, err := c.tutorService.Question(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("exam", req.Exam).Str("topic", req.Topic).Msg("Question generation failed")
		respondError(ctx, err, "Failed to generate question")
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// SolveDoubt godoc
// @Summary Explain a student's doubt step by step
// @Tags AI
// @Accept json
// @Produce json
// @Param doubt body dto.DoubtRequest true "The doubt to explain"
// @Success 200 {object} dto.DoubtResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /solve-doubt [post]
func (c *AIController) SolveDoubt(ctx *gin.Context) {
	var req dto.DoubtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	explanation, err := c.tutorService.SolveDoubt(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Doubt solving failed")
		respondError(ctx, err, "Sorry, I couldn't process that question.")
		return
	}
	ctx.JSON(http.StatusOK, dto.DoubtResponse{Explanation: explanation})
}

// GenerateMockTest godoc
// @Summary Generate a mock test of multiple-choice questions
// @Tags AI
// @Accept json
// @Produce json
// @Param criteria body dto.MockTestRequest true "Exam, subject, topic, question count and difficulty"
// @Success 200 {array} dto.QuizItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-mock-test [post]
func (c *AIController) GenerateMockTest(ctx *gin.Context) {
	var req dto.MockTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	items, err := c.mockTestService.Generate(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("exam", req.Exam).Str("subject", req.Subject).Msg("Mock test generation failed")
		respondError(ctx, err, "Failed to generate mock test")
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// AnalyzePerformance godoc
// @Summary Score a mock test attempt and analyze it
// @Tags AI
// @Accept json
// @Produce json
// @Param attempt body dto.PerformanceRequest true "Questions and the user's answers"
// @Success 200 {object} dto.PerformanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze-performance [post]
func (c *AIController) AnalyzePerformance(ctx *gin.Context) {
	var req dto.PerformanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := c.performanceService.Analyze(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Performance analysis failed")
		respondError(ctx, err, "Failed to analyze performance")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// FindScholarships godoc
// @Summary Find scholarships matching a student profile
// @Tags AI
// @Accept json
// @Produce json
// @Param profile body dto.ScholarshipRequest true "Student profile"
// @Success 200 {array} dto.Scholarship
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /find-scholarships [post]
func (c *AIController) FindScholarships(ctx *gin.Context) {
	var req dto.ScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	scholarships, err := c.scholarshipService.Find(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Scholarship search failed")
		respondError(ctx, err, "Failed to find scholarships")
		return
	}
	if len(scholarships) == 0 {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No scholarships found for this profile"})
		return
	}
	ctx.JSON(http.StatusOK, scholarships)
}
