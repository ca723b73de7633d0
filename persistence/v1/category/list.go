package category

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// List returns every category ordered by name ascending.
func List(ctx context.Context, q sqlx.ExtContext) ([]Category, error) {
	query, args, err := builder().
		Select(columns...).
		From("categories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	categories := make([]Category, 0)
	if err := sqlx.SelectContext(ctx, q, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}

	return categories, nil
}

// ListWithNoteCounts returns every category with the number of notes attached
// to it, archived included. The outer join keeps categories with zero notes.
func ListWithNoteCounts(ctx context.Context, q sqlx.ExtContext) ([]CategoryWithCount, error) {
	query, args, err := builder().
		Select("c.id", "c.name", "c.color", "c.created_at", "c.updated_at", "COUNT(nc.note_id) AS notes_count").
		From("categories c").
		LeftJoin("note_categories nc ON nc.category_id = c.id").
		GroupBy("c.id").
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list with counts query: %w", err)
	}

	categories := make([]CategoryWithCount, 0)
	if err := sqlx.SelectContext(ctx, q, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query list with counts stmt: %w", err)
	}

	return categories, nil
}
