// Package note persists note rows and keeps the listing, counting and search
// queries on one shared filter so they can never disagree.
package note

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	TypeNote = "note"
	TypeTodo = "todo"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Note struct {
	Id         uint64     `db:"id"`
	Title      string     `db:"title"`
	Content    string     `db:"content"`
	NoteType   string     `db:"note_type"`
	TodoStatus string     `db:"todo_status"`
	Priority   string     `db:"priority"`
	DueDate    *time.Time `db:"due_date"`
	IsArchived bool       `db:"is_archived"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

type NewNote struct {
	Title      string
	Content    string
	NoteType   string
	TodoStatus string
	Priority   string
	DueDate    *time.Time
}

// UpdateNote carries the partial update; nil fields stay untouched.
type UpdateNote struct {
	Title      *string
	Content    *string
	Priority   *string
	DueDate    *time.Time
	IsArchived *bool
	TodoStatus *string
}

// Filter is the single predicate shared by List, Count and Search. An empty
// CategoryIds slice means no category filtering at all.
type Filter struct {
	Archived    *bool
	TodosOnly   bool
	Status      string
	Priority    string
	Term        string
	CategoryIds []uint64
}

func (f Filter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	if f.Archived != nil {
		b = b.Where(sq.Eq{"n.is_archived": *f.Archived})
	}
	if f.TodosOnly {
		b = b.Where(sq.Eq{"n.note_type": TypeTodo})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"n.todo_status": f.Status})
	}
	if f.Priority != "" {
		b = b.Where(sq.Eq{"n.priority": f.Priority})
	}
	if f.Term != "" {
		pattern := "%" + f.Term + "%"
		b = b.Where(sq.Or{sq.ILike{"n.title": pattern}, sq.ILike{"n.content": pattern}})
	}
	if len(f.CategoryIds) > 0 {
		// a note qualifies when it carries any of the requested categories
		b = b.Join("note_categories nc ON nc.note_id = n.id").
			Where(sq.Eq{"nc.category_id": f.CategoryIds})
	}
	return b
}

var columns = []string{"id", "title", "content", "note_type", "todo_status", "priority", "due_date", "is_archived", "created_at", "updated_at"}

func prefixed() []string {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = "n." + c
	}
	return cols
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
