package services

import (
	"context"
	"errors"

	"trivia-api/internal/models"
	"trivia-api/internal/store"
	"trivia-api/internal/validation"
)

var ErrNotFound = errors.New("resource not found")

type TriviaService struct {
	store store.Store
}

func NewTriviaService(s store.Store) *TriviaService {
	return &TriviaService{store: s}
}

type QuestionPage struct {
	Questions []models.Question
	Total     int64
}

type CategoryQuestions struct {
	QuestionPage
	Category models.Category
}

func (s *TriviaService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// ListQuestions returns one page of all questions. The first page is always
// valid, even when empty; any later page must contain questions.
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	return s.findPage(ctx, store.QuestionQuery{Page: page})
}

func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (QuestionPage, error) {
	return s.findPage(ctx, store.QuestionQuery{Page: page, Search: term})
}

// QuestionsByCategory requires both a non-empty page and an existing
// category.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, category validation.CategoryPath, page int) (CategoryQuestions, error) {
	result, err := s.findPage(ctx, store.QuestionQuery{
		Page:     page,
		Category: category.Ref,
	})
	if err != nil {
		return CategoryQuestions{}, err
	}
	if len(result.Questions) == 0 {
		return CategoryQuestions{}, ErrNotFound
	}

	row, err := s.store.GetCategory(ctx, category.ID)
	if err != nil {
		return CategoryQuestions{}, translate(err)
	}
	return CategoryQuestions{QuestionPage: result, Category: *row}, nil
}

func (s *TriviaService) findPage(ctx context.Context, q store.QuestionQuery) (QuestionPage, error) {
	if q.Page < 1 || q.Page > store.MaxPage {
		return QuestionPage{}, ErrNotFound
	}
	q.PerPage = store.QuestionsPerPage

	result, err := s.store.FindQuestions(ctx, q)
	if err != nil {
		return QuestionPage{}, err
	}
	if len(result.Items) == 0 && q.Page > 1 {
		return QuestionPage{}, ErrNotFound
	}
	return QuestionPage{Questions: result.Items, Total: result.Total}, nil
}

func (s *TriviaService) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	question, err := s.store.GetQuestion(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return question, nil
}

func (s *TriviaService) CreateQuestion(ctx context.Context, input validation.NewQuestion) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.store.CreateQuestion(ctx, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *TriviaService) DeleteQuestion(ctx context.Context, id uint) error {
	return translate(s.store.DeleteQuestion(ctx, id))
}

// NextQuestion picks one question not yet seen in this round. A nil question
// with a nil error means the round is exhausted.
func (s *TriviaService) NextQuestion(ctx context.Context, req validation.QuizRequest) (*models.Question, error) {
	return s.store.NextQuizQuestion(ctx, store.QuizQuery{
		Exclude:     req.Exclude,
		Category:    req.Category,
		AnyCategory: req.AnyCategory,
	})
}

func translate(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
