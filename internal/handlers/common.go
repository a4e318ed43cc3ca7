package handlers

import (
	"fmt"
	"strings"

	"trivia-api/internal/models"
	"trivia-api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Type alias so swag can resolve the model in annotations.
type Question = models.Question

// listingCategory is the placeholder current_category sent with listing and
// search results. Clients depend on it verbatim.
var listingCategory = map[string]string{"0": "click"}

type CategoriesResponse struct {
	Success    bool              `json:"success" example:"true"`
	Categories map[string]string `json:"categories"`
}

type QuestionListResponse struct {
	Success         bool              `json:"success" example:"true"`
	Questions       []Question        `json:"questions"`
	TotalQuestions  int64             `json:"total_questions" example:"19"`
	Categories      map[string]string `json:"categories"`
	CurrentCategory map[string]string `json:"current_category"`
}

type QuestionPageResponse struct {
	Success         bool              `json:"success" example:"true"`
	Questions       []Question        `json:"questions"`
	TotalQuestions  int64             `json:"total_questions" example:"3"`
	CurrentCategory map[string]string `json:"current_category"`
}

type QuestionResponse struct {
	Success  bool     `json:"success" example:"true"`
	Question Question `json:"question"`
}

type CreatedResponse struct {
	Success bool `json:"success" example:"true"`
	Created uint `json:"created" example:"24"`
}

type DeletedResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted uint `json:"deleted" example:"5"`
}

type QuizResponse struct {
	Success           bool      `json:"success" example:"true"`
	Question          *Question `json:"question"`
	PreviousQuestions []any     `json:"previous_questions"`
}

// Request bodies, documentation only. Bodies are decoded into maps so the
// closed-schema checks can see extra keys and exact JSON kinds.

type CreateQuestionRequest struct {
	Question   string `json:"question" example:"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"`
	Answer     string `json:"answer" example:"Maya Angelou"`
	Category   string `json:"category" example:"4"`
	Difficulty int    `json:"difficulty" example:"2"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm" example:"title"`
}

type QuizCategory struct {
	ID   string `json:"id" example:"1"`
	Type string `json:"type" example:"Science"`
}

type QuizRequest struct {
	PreviousQuestions []int        `json:"previous_questions" example:"1,16"`
	QuizCategory      QuizCategory `json:"quiz_category"`
}

func nonNil(questions []models.Question) []Question {
	if questions == nil {
		return []Question{}
	}
	return questions
}

// isJSON accepts application/json and structured types such as
// application/vnd.api+json.
func isJSON(contentType string) bool {
	if contentType == binding.MIMEJSON {
		return true
	}
	return strings.HasPrefix(contentType, "application/") && strings.HasSuffix(contentType, "+json")
}

// readPayload decodes a JSON object body. Bodies sent without a JSON
// content type are rejected like malformed ones.
func readPayload(c *gin.Context) (map[string]any, error) {
	if !isJSON(c.ContentType()) {
		return nil, fmt.Errorf("%w: content type must be json", validation.ErrInvalidArgument)
	}
	body, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", validation.ErrInvalidArgument, err)
	}
	return validation.DecodePayload(body)
}
