package handlers

import (
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"
	"trivia-api/internal/validation"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	triviaService *services.TriviaService
}

func NewCategoryHandler(triviaService *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{triviaService: triviaService}
}

// ListCategories godoc
// @Summary      List categories
// @Description  All categories as an id to type map
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.triviaService.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: models.FormatCategories(categories),
	})
}

// ListCategoryQuestions godoc
// @Summary      List questions of a category
// @Tags         categories
// @Produce      json
// @Param        id   path  int true  "Category ID"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionPageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	category, err := validation.CategoryPathParam(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	page := validation.Page(c.Query("page"))

	result, err := h.triviaService.QuestionsByCategory(c.Request.Context(), category, page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionPageResponse{
		Success:         true,
		Questions:       nonNil(result.Questions),
		TotalQuestions:  result.Total,
		CurrentCategory: result.Category.Format(),
	})
}
