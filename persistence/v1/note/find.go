package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Find returns the bare note row, without categories. A zero Note means absent.
func Find(ctx context.Context, q sqlx.ExtContext, id uint64) (Note, error) {
	query, args, err := builder().
		Select(columns...).
		From("notes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return Note{}, fmt.Errorf("failed to build find query: %w", err)
	}

	var n Note
	if err := sqlx.GetContext(ctx, q, &n, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, nil
		}
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	return n, nil
}
