// Package store is the persistence layer for questions and categories.
package store

import (
	"context"
	"errors"
	"math"

	"trivia-api/internal/models"
)

const QuestionsPerPage = 10

// MaxPage is the last page number whose offset is representable.
const MaxPage = math.MaxInt/QuestionsPerPage + 1

var ErrNotFound = errors.New("record not found")

// QuestionQuery selects one page of questions. Zero-value Search and
// Category mean no filtering.
type QuestionQuery struct {
	Page     int
	PerPage  int
	Search   string
	Category models.CategoryRef
}

type QuestionPage struct {
	Items []models.Question
	// Total counts every matching question, not just this page.
	Total int64
}

type QuizQuery struct {
	Exclude     []int64
	Category    models.CategoryRef
	AnyCategory bool
}

type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)

	GetQuestion(ctx context.Context, id uint) (*models.Question, error)
	FindQuestions(ctx context.Context, q QuestionQuery) (QuestionPage, error)
	CreateQuestion(ctx context.Context, question *models.Question) error
	DeleteQuestion(ctx context.Context, id uint) error

	// NextQuizQuestion returns nil without error when nothing is eligible.
	NextQuizQuestion(ctx context.Context, q QuizQuery) (*models.Question, error)
}
