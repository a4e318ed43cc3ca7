package handlers

import (
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"
	"trivia-api/internal/validation"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	triviaService *services.TriviaService
}

func NewQuestionHandler(triviaService *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{triviaService: triviaService}
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Ten questions per page in id order, with all categories
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()
	page := validation.Page(c.Query("page"))

	result, err := h.triviaService.ListQuestions(ctx, page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	categories, err := h.triviaService.Categories(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       nonNil(result.Questions),
		TotalQuestions:  result.Total,
		Categories:      models.FormatCategories(categories),
		CurrentCategory: listingCategory,
	})
}

// GetQuestion godoc
// @Summary      Get a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} QuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID, err := validation.PathID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	question, err := h.triviaService.GetQuestion(c.Request.Context(), questionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionResponse{Success: true, Question: *question})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Description  Body must hold exactly question, answer, category and difficulty
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} CreatedResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	payload, err := readPayload(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	input, err := validation.QuestionPayload(payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	question, err := h.triviaService.CreateQuestion(c.Request.Context(), input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{Success: true, Created: question.ID})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeletedResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := validation.PathID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.triviaService.DeleteQuestion(c.Request.Context(), questionID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeletedResponse{Success: true, Deleted: questionID})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        page    query int           false "Page number" default(1)
// @Param        request body  SearchRequest true  "Search term"
// @Success      200 {object} QuestionPageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questionssearch [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	payload, err := readPayload(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	term, err := validation.SearchPayload(payload)
	if err != nil {
		abortWithError(c, err)
		return
	}
	page := validation.Page(c.Query("page"))

	result, err := h.triviaService.SearchQuestions(c.Request.Context(), term, page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionPageResponse{
		Success:         true,
		Questions:       nonNil(result.Questions),
		TotalQuestions:  result.Total,
		CurrentCategory: listingCategory,
	})
}
