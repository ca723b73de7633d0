package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

func Insert(ctx context.Context, q sqlx.ExtContext, newN NewNote) (Note, error) {
	now := time.Now().UTC()

	query, args, err := builder().
		Insert("notes").
		Columns("title", "content", "note_type", "todo_status", "priority", "due_date", "is_archived", "created_at", "updated_at").
		Values(newN.Title, newN.Content, newN.NoteType, newN.TodoStatus, newN.Priority, newN.DueDate, false, now, now).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return Note{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	var n Note
	if err := sqlx.GetContext(ctx, q, &n, query, args...); err != nil {
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}

	return n, nil
}
