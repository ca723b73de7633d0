// Package category persists category rows and their note associations.
package category

import (
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// ErrDuplicateName is returned when an insert or update hits the unique
// constraint on the category name.
var ErrDuplicateName = errors.New("category name already exists")

type Category struct {
	Id        uint64    `db:"id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CategoryWithCount struct {
	Category
	NotesCount int64 `db:"notes_count"`
}

type NewCategory struct {
	Name  string
	Color string
}

// UpdateCategory carries the partial update; nil fields stay untouched.
type UpdateCategory struct {
	Name  *string
	Color *string
}

var columns = []string{"id", "name", "color", "created_at", "updated_at"}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
