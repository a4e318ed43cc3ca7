package store

import (
	"math"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

// Paginate limits a query to the 1-based page. Pages below 1, and pages whose
// offset does not fit in an int, select nothing.
func Paginate(page, perPage int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if perPage <= 0 {
			perPage = QuestionsPerPage
		}
		if page < 1 || page-1 > math.MaxInt/perPage {
			return db.Where("1 = 0")
		}
		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}

// MatchingText keeps questions whose text contains term, ignoring case.
// LOWER/LIKE is used instead of ILIKE so the query also runs on SQLite.
// SQLite's LOWER folds ASCII letters only; postgres folds per locale.
func MatchingText(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where("LOWER(question) LIKE LOWER(?)", "%"+term+"%")
	}
}

func InCategory(ref models.CategoryRef) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ref == "" {
			return db
		}
		return db.Where("category = ?", ref)
	}
}

func Excluding(ids []int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db
		}
		return db.Where("id NOT IN ?", ids)
	}
}

func (q QuestionQuery) filters() []func(*gorm.DB) *gorm.DB {
	return []func(*gorm.DB) *gorm.DB{MatchingText(q.Search), InCategory(q.Category)}
}

func (q QuizQuery) filters() []func(*gorm.DB) *gorm.DB {
	scopes := []func(*gorm.DB) *gorm.DB{Excluding(q.Exclude)}
	if !q.AnyCategory {
		scopes = append(scopes, InCategory(q.Category))
	}
	return scopes
}
