package models

// CategoryRef is the text reference a question holds to a category. It is
// usually the decimal id of a Category but nothing enforces that.
type CategoryRef string

type Question struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Question   string      `gorm:"type:text;not null" json:"question"`
	Answer     string      `gorm:"type:text;not null" json:"answer"`
	Category   CategoryRef `gorm:"type:text;not null;index" json:"category"`
	Difficulty int         `gorm:"not null" json:"difficulty"`
}
