package category

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Search returns categories whose name contains the term, case-insensitively,
// ordered by name ascending.
func Search(ctx context.Context, q sqlx.ExtContext, term string) ([]Category, error) {
	query, args, err := builder().
		Select(columns...).
		From("categories").
		Where(sq.ILike{"name": "%" + term + "%"}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}

	categories := make([]Category, 0)
	if err := sqlx.SelectContext(ctx, q, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query search stmt: %w", err)
	}

	return categories, nil
}
