// Package storetest opens throwaway SQLite databases with the trivia schema
// for tests.
package storetest

import (
	"testing"

	"trivia-api/internal/database"
	"trivia-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var Categories = []models.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// Questions is the seed set: 12 questions, ids 1..12, three in Science
// ("1"), none in Sports ("6").
var Questions = []models.Question{
	{ID: 1, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: "1", Difficulty: 4},
	{ID: 2, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: "1", Difficulty: 3},
	{ID: 3, Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: "1", Difficulty: 4},
	{ID: 4, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: "2", Difficulty: 3},
	{ID: 5, Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: "2", Difficulty: 4},
	{ID: 6, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: "3", Difficulty: 2},
	{ID: 7, Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: "3", Difficulty: 2},
	{ID: 8, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: "4", Difficulty: 2},
	{ID: 9, Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: "4", Difficulty: 2},
	{ID: 10, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: "4", Difficulty: 1},
	{ID: 11, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: "5", Difficulty: 4},
	{ID: 12, Question: "What was the TITLE of the 1990 fantasy directed by Tim Burton?", Answer: "Edward Scissorhands", Category: "5", Difficulty: 3},
}

// Open returns an empty in-memory database with the schema applied.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// each connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Seeded returns a database holding Categories and Questions.
func Seeded(t testing.TB) *gorm.DB {
	t.Helper()

	db := Open(t)
	categories := append([]models.Category(nil), Categories...)
	questions := append([]models.Question(nil), Questions...)
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("seed questions: %v", err)
	}
	return db
}
