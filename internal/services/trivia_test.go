package services_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"trivia-api/internal/models"
	"trivia-api/internal/services"
	"trivia-api/internal/store"
	"trivia-api/internal/store/storetest"
	"trivia-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *services.TriviaService {
	return services.NewTriviaService(store.NewGormStore(storetest.Seeded(t)))
}

func categoryPath(t *testing.T, raw string) validation.CategoryPath {
	t.Helper()
	category, err := validation.CategoryPathParam(raw)
	require.NoError(t, err)
	return category
}

func TestListQuestionsPageRange(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	page, err := svc.ListQuestions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 10)
	assert.Equal(t, int64(12), page.Total)

	page, err = svc.ListQuestions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 2)

	for _, p := range []int{0, -1, 3, 1000, store.MaxPage, store.MaxPage + 1, math.MaxInt} {
		_, err = svc.ListQuestions(ctx, p)
		assert.ErrorIs(t, err, services.ErrNotFound, "page %d", p)
	}
}

func TestListQuestionsEmptyStore(t *testing.T) {
	svc := services.NewTriviaService(store.NewGormStore(storetest.Open(t)))

	page, err := svc.ListQuestions(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, page.Questions)
	assert.Zero(t, page.Total)

	_, err = svc.ListQuestions(context.Background(), 2)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSearchQuestions(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	page, err := svc.SearchQuestions(ctx, "penicillin", 1)
	require.NoError(t, err)
	require.Len(t, page.Questions, 1)
	assert.Equal(t, uint(2), page.Questions[0].ID)

	page, err = svc.SearchQuestions(ctx, "no such words", 1)
	require.NoError(t, err)
	assert.Empty(t, page.Questions)

	_, err = svc.SearchQuestions(ctx, "penicillin", 2)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestQuestionsByCategory(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	result, err := svc.QuestionsByCategory(ctx, categoryPath(t, "1"), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	assert.Equal(t, "Science", result.Category.Type)

	cases := []struct {
		name     string
		category string
		page     int
	}{
		{"category zero", "0", 1},
		{"unknown category", "1000", 1},
		{"category without questions", "6", 1},
		{"page past the end", "1", 2},
		{"page offset overflows", "1", math.MaxInt},
		{"leading zero", "01", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.QuestionsByCategory(ctx, categoryPath(t, tc.category), tc.page)
			assert.ErrorIs(t, err, services.ErrNotFound)
		})
	}
}

func TestQuestionsByCategoryNeedsCategoryRow(t *testing.T) {
	db := storetest.Seeded(t)
	require.NoError(t, db.Create(&models.Question{Question: "Orphan?", Answer: "yes", Category: "42", Difficulty: 1}).Error)
	svc := services.NewTriviaService(store.NewGormStore(db))

	_, err := svc.QuestionsByCategory(context.Background(), categoryPath(t, "42"), 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCreateAndDeleteQuestion(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	q, err := svc.CreateQuestion(ctx, validation.NewQuestion{
		Question: "Ask?", Answer: "answered", Category: "science", Difficulty: 1,
	})
	require.NoError(t, err)
	assert.Greater(t, q.ID, uint(12))

	got, err := svc.GetQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryRef("science"), got.Category)

	require.NoError(t, svc.DeleteQuestion(ctx, q.ID))
	_, err = svc.GetQuestion(ctx, q.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteQuestion(ctx, q.ID), services.ErrNotFound)
}

func TestNextQuestion(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	q, err := svc.NextQuestion(ctx, validation.QuizRequest{Category: "1", Exclude: []int64{1}})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.NotEqual(t, uint(1), q.ID)
	assert.Equal(t, models.CategoryRef("1"), q.Category)

	q, err = svc.NextQuestion(ctx, validation.QuizRequest{Category: "1", Exclude: []int64{1, 2, 3}})
	require.NoError(t, err)
	assert.Nil(t, q)
}

type brokenStore struct {
	store.Store
}

var errBroken = errors.New("connection refused")

func (brokenStore) ListCategories(context.Context) ([]models.Category, error) {
	return nil, errBroken
}

func (brokenStore) FindQuestions(context.Context, store.QuestionQuery) (store.QuestionPage, error) {
	return store.QuestionPage{}, errBroken
}

func TestStoreFailuresPassThrough(t *testing.T) {
	svc := services.NewTriviaService(brokenStore{})

	_, err := svc.Categories(context.Background())
	assert.ErrorIs(t, err, errBroken)

	_, err = svc.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, errBroken)
	assert.NotErrorIs(t, err, services.ErrNotFound)
}
