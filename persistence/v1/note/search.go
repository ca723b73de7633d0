package note

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Search returns the full match set for the filter, newest update first.
// Search results carry no pagination.
func Search(ctx context.Context, q sqlx.ExtContext, f Filter) ([]Note, error) {
	b := builder().Select(prefixed()...).From("notes n")
	if len(f.CategoryIds) > 0 {
		b = b.Distinct()
	}

	query, args, err := f.apply(b).
		OrderBy("n.updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}

	notes := make([]Note, 0)
	if err := sqlx.SelectContext(ctx, q, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query search stmt: %w", err)
	}

	return notes, nil
}
