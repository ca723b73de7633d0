// Package category implements the category business operations.
package category

import (
	"regexp"
	"time"
)

// DefaultColor is applied when a category is created without a color.
const DefaultColor = "#3B82F6"

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidColor reports whether the value is a six digit hex color.
func ValidColor(color string) bool {
	return colorPattern.MatchString(color)
}

type Category struct {
	Id        uint64    `json:"id" example:"1"`
	Name      string    `json:"name" example:"Work"`
	Color     string    `json:"color" example:"#3B82F6"`
	CreatedAt time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2006-01-02T15:04:05Z"`
}

type CategoryWithCount struct {
	Category
	NotesCount int64 `json:"notes_count" example:"3"`
}

type NewCategory struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color"`
}

type UpdateCategory struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Color *string `json:"color"`
}
