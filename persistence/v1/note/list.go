package note

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// List returns one page of notes matching the filter, newest update first.
// The category join can produce duplicate rows, hence the DISTINCT.
func List(ctx context.Context, q sqlx.ExtContext, f Filter, skip, limit uint64) ([]Note, error) {
	b := builder().Select(prefixed()...).From("notes n")
	if len(f.CategoryIds) > 0 {
		b = b.Distinct()
	}

	query, args, err := f.apply(b).
		OrderBy("n.updated_at DESC").
		Limit(limit).
		Offset(skip).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	notes := make([]Note, 0)
	if err := sqlx.SelectContext(ctx, q, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}

	return notes, nil
}

// Count counts the notes matching the same filter List uses.
func Count(ctx context.Context, q sqlx.ExtContext, f Filter) (int64, error) {
	query, args, err := f.apply(builder().
		Select("COUNT(DISTINCT n.id)").
		From("notes n")).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := sqlx.GetContext(ctx, q, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to query count stmt: %w", err)
	}

	return total, nil
}
