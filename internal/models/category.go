package models

import "strconv"

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"type:text;not null" json:"type"`
}

// Format renders the category as the single-entry {"<id>": "<type>"} map the
// frontend expects.
func (c Category) Format() map[string]string {
	return map[string]string{strconv.FormatUint(uint64(c.ID), 10): c.Type}
}

// FormatCategories merges the formatted categories into one map.
func FormatCategories(categories []Category) map[string]string {
	out := make(map[string]string, len(categories))
	for _, c := range categories {
		out[strconv.FormatUint(uint64(c.ID), 10)] = c.Type
	}
	return out
}
