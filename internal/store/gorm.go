package store

import (
	"context"
	"errors"
	"fmt"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *GormStore) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, notFoundOr(err, "get category")
	}
	return &category, nil
}

func (s *GormStore) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, notFoundOr(err, "get question")
	}
	return &question, nil
}

func (s *GormStore) FindQuestions(ctx context.Context, q QuestionQuery) (QuestionPage, error) {
	var page QuestionPage

	base := s.db.WithContext(ctx).Model(&models.Question{}).Scopes(q.filters()...)
	if err := base.Session(&gorm.Session{}).Count(&page.Total).Error; err != nil {
		return QuestionPage{}, fmt.Errorf("count questions: %w", err)
	}

	err := base.Session(&gorm.Session{}).
		Scopes(Paginate(q.Page, q.PerPage)).
		Order("id ASC").
		Find(&page.Items).Error
	if err != nil {
		return QuestionPage{}, fmt.Errorf("find questions: %w", err)
	}
	return page, nil
}

func (s *GormStore) CreateQuestion(ctx context.Context, question *models.Question) error {
	if err := s.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteQuestion(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) NextQuizQuestion(ctx context.Context, q QuizQuery) (*models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Scopes(q.filters()...).
		Order("RANDOM()").
		Limit(1).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("next quiz question: %w", err)
	}
	if len(questions) == 0 {
		return nil, nil
	}
	return &questions[0], nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
