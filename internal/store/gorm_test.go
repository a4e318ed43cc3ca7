package store_test

import (
	"context"
	"math"
	"testing"

	"trivia-api/internal/models"
	"trivia-api/internal/store"
	"trivia-api/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(questions []models.Question) []uint {
	out := make([]uint, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}

func TestFindQuestionsPaginates(t *testing.T) {
	s := store.NewGormStore(storetest.Seeded(t))
	ctx := context.Background()

	first, err := s.FindQuestions(ctx, store.QuestionQuery{Page: 1, PerPage: store.QuestionsPerPage})
	require.NoError(t, err)
	assert.Equal(t, int64(12), first.Total)
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(first.Items))

	second, err := s.FindQuestions(ctx, store.QuestionQuery{Page: 2, PerPage: store.QuestionsPerPage})
	require.NoError(t, err)
	assert.Equal(t, int64(12), second.Total)
	assert.Equal(t, []uint{11, 12}, ids(second.Items))

	third, err := s.FindQuestions(ctx, store.QuestionQuery{Page: 3, PerPage: store.QuestionsPerPage})
	require.NoError(t, err)
	assert.Empty(t, third.Items)
	assert.Equal(t, int64(12), third.Total)

	zero, err := s.FindQuestions(ctx, store.QuestionQuery{Page: 0})
	require.NoError(t, err)
	assert.Empty(t, zero.Items)

	for _, p := range []int{store.MaxPage + 1, math.MaxInt} {
		far, err := s.FindQuestions(ctx, store.QuestionQuery{Page: p, PerPage: store.QuestionsPerPage})
		require.NoError(t, err)
		assert.Empty(t, far.Items, "page %d", p)
		assert.Equal(t, int64(12), far.Total)
	}
}

func TestFindQuestionsSearchIgnoresCase(t *testing.T) {
	s := store.NewGormStore(storetest.Seeded(t))

	page, err := s.FindQuestions(context.Background(), store.QuestionQuery{Page: 1, Search: "title"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, []uint{8, 12}, ids(page.Items))

	page, err = s.FindQuestions(context.Background(), store.QuestionQuery{Page: 1, Search: "WHO"})
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 8, 9}, ids(page.Items))
}

func TestFindQuestionsByCategory(t *testing.T) {
	s := store.NewGormStore(storetest.Seeded(t))

	page, err := s.FindQuestions(context.Background(), store.QuestionQuery{Page: 1, Category: "4"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, []uint{8, 9, 10}, ids(page.Items))
	for _, q := range page.Items {
		assert.Equal(t, models.CategoryRef("4"), q.Category)
	}
}

func TestCreateGetDeleteQuestion(t *testing.T) {
	s := store.NewGormStore(storetest.Seeded(t))
	ctx := context.Background()

	q := models.Question{Question: "Ask?", Answer: "answered", Category: "science", Difficulty: 1}
	require.NoError(t, s.CreateQuestion(ctx, &q))
	assert.Greater(t, q.ID, uint(12))

	got, err := s.GetQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q, *got)

	require.NoError(t, s.DeleteQuestion(ctx, q.ID))
	_, err = s.GetQuestion(ctx, q.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteQuestion(ctx, q.ID), store.ErrNotFound)
}

func TestCategories(t *testing.T) {
	s := store.NewGormStore(storetest.Seeded(t))
	ctx := context.Background()

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, storetest.Categories, categories)

	c, err := s.GetCategory(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Geography", c.Type)

	_, err = s.GetCategory(ctx, 1000)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNextQuizQuestion(t *testing.T) {
	s := store.NewGormStore(storetest.Seeded(t))
	ctx := context.Background()

	t.Run("excludes previous and filters category", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			q, err := s.NextQuizQuestion(ctx, store.QuizQuery{Exclude: []int64{1}, Category: "1"})
			require.NoError(t, err)
			require.NotNil(t, q)
			assert.Contains(t, []uint{2, 3}, q.ID)
		}
	})

	t.Run("any category", func(t *testing.T) {
		exclude := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
		q, err := s.NextQuizQuestion(ctx, store.QuizQuery{Exclude: exclude, Category: "0", AnyCategory: true})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, uint(12), q.ID)
	})

	t.Run("exhausted", func(t *testing.T) {
		q, err := s.NextQuizQuestion(ctx, store.QuizQuery{Exclude: []int64{1, 2, 3}, Category: "1"})
		require.NoError(t, err)
		assert.Nil(t, q)
	})

	t.Run("empty category", func(t *testing.T) {
		q, err := s.NextQuizQuestion(ctx, store.QuizQuery{Category: "6"})
		require.NoError(t, err)
		assert.Nil(t, q)
	})
}
