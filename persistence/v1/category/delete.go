package category

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Delete removes the category row. Association rows go with it through the
// foreign key cascade; notes are never touched.
func Delete(ctx context.Context, q sqlx.ExtContext, id uint64) error {
	query, args, err := builder().
		Delete("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}

	return nil
}
