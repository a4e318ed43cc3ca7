package validation

import (
	"fmt"
	"strconv"

	"trivia-api/internal/models"
)

var questionSchema = Schema{
	{Name: "question", Kind: KindText, NonEmpty: true},
	{Name: "answer", Kind: KindText, NonEmpty: true},
	{Name: "category", Kind: KindText, NonEmpty: true},
	{Name: "difficulty", Kind: KindInteger},
}

type NewQuestion struct {
	Question   string
	Answer     string
	Category   models.CategoryRef
	Difficulty int
}

// QuestionPayload validates a question creation body.
func QuestionPayload(payload map[string]any) (NewQuestion, error) {
	if err := questionSchema.Strict(payload); err != nil {
		return NewQuestion{}, err
	}
	difficulty, _ := asInteger(payload["difficulty"])
	return NewQuestion{
		Question:   payload["question"].(string),
		Answer:     payload["answer"].(string),
		Category:   models.CategoryRef(payload["category"].(string)),
		Difficulty: int(difficulty),
	}, nil
}

// SearchPayload returns the searchTerm of a search body.
func SearchPayload(payload map[string]any) (string, error) {
	term, ok := payload["searchTerm"].(string)
	if !ok {
		return "", invalid("searchTerm must be text")
	}
	if term == "" {
		return "", invalid("searchTerm must not be empty")
	}
	return term, nil
}

// CategoryPath is a category id taken from the URL path. Ref keeps the digits
// as sent, so "01" does not match questions filed under "1".
type CategoryPath struct {
	ID  uint
	Ref models.CategoryRef
}

func CategoryPathParam(raw string) (CategoryPath, error) {
	id, err := PathID(raw)
	if err != nil {
		return CategoryPath{}, err
	}
	return CategoryPath{ID: id, Ref: models.CategoryRef(raw)}, nil
}

type QuizRequest struct {
	// Category is compared against Question.Category unless AnyCategory is set.
	Category    models.CategoryRef
	AnyCategory bool
	Exclude     []int64
	// Previous holds the previous_questions elements exactly as received.
	Previous []any
}

// QuizPayload validates a next-question body.
func QuizPayload(payload map[string]any) (QuizRequest, error) {
	quizCategory, ok := payload["quiz_category"].(map[string]any)
	if !ok {
		return QuizRequest{}, invalid("quiz_category must be an object")
	}
	rawID, ok := quizCategory["id"]
	if !ok || rawID == nil {
		return QuizRequest{}, invalid("quiz_category.id is required")
	}

	var req QuizRequest
	categoryID, err := NumericToken(rawID)
	if err != nil {
		return QuizRequest{}, err
	}
	if s, isText := rawID.(string); isText {
		req.Category = models.CategoryRef(s)
	} else {
		req.Category = models.CategoryRef(strconv.FormatInt(categoryID, 10))
	}
	req.AnyCategory = categoryID == 0

	previous, ok := payload["previous_questions"].([]any)
	if !ok {
		return QuizRequest{}, invalid("previous_questions must be an array")
	}
	req.Exclude = make([]int64, 0, len(previous))
	for i, v := range previous {
		id, err := NumericToken(v)
		if err != nil {
			return QuizRequest{}, fmt.Errorf("previous_questions[%d]: %w", i, err)
		}
		req.Exclude = append(req.Exclude, id)
	}
	req.Previous = previous

	return req, nil
}
