package handlers

import (
	"net/http"

	"trivia-api/internal/services"
	"trivia-api/internal/validation"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	triviaService *services.TriviaService
}

func NewQuizHandler(triviaService *services.TriviaService) *QuizHandler {
	return &QuizHandler{triviaService: triviaService}
}

// NextQuestion godoc
// @Summary      Next quiz question
// @Description  Picks one question not in previous_questions; quiz_category.id 0 means any category.
// @Description  question is null once the round is exhausted.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	payload, err := readPayload(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	req, err := validation.QuizPayload(payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	question, err := h.triviaService.NextQuestion(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	previous := append(make([]any, 0, len(req.Previous)+1), req.Previous...)
	if question != nil {
		previous = append(previous, question.ID)
	}

	c.JSON(http.StatusOK, QuizResponse{
		Success:           true,
		Question:          question,
		PreviousQuestions: previous,
	})
}
