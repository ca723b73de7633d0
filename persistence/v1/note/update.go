package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Update applies the non-nil fields and always refreshes updated_at, so a
// category-only mutation still bumps it. It returns a zero Note when the id
// does not exist.
func Update(ctx context.Context, q sqlx.ExtContext, id uint64, u UpdateNote) (Note, error) {
	b := builder().Update("notes")
	if u.Title != nil {
		b = b.Set("title", *u.Title)
	}
	if u.Content != nil {
		b = b.Set("content", *u.Content)
	}
	if u.Priority != nil {
		b = b.Set("priority", *u.Priority)
	}
	if u.DueDate != nil {
		b = b.Set("due_date", *u.DueDate)
	}
	if u.IsArchived != nil {
		b = b.Set("is_archived", *u.IsArchived)
	}
	if u.TodoStatus != nil {
		b = b.Set("todo_status", *u.TodoStatus)
	}
	b = b.Set("updated_at", time.Now().UTC())

	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return Note{}, fmt.Errorf("failed to build update query: %w", err)
	}

	var n Note
	if err := sqlx.GetContext(ctx, q, &n, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, nil
		}
		return Note{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}

	return n, nil
}
