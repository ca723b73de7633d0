package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Update applies the non-nil fields and refreshes updated_at. It returns a
// zero Category when the id does not exist.
func Update(ctx context.Context, q sqlx.ExtContext, id uint64, u UpdateCategory) (Category, error) {
	b := builder().Update("categories")
	if u.Name != nil {
		b = b.Set("name", *u.Name)
	}
	if u.Color != nil {
		b = b.Set("color", *u.Color)
	}
	b = b.Set("updated_at", time.Now().UTC())

	query, args, err := b.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return Category{}, fmt.Errorf("failed to build update query: %w", err)
	}

	var c Category
	if err := sqlx.GetContext(ctx, q, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, nil
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return Category{}, ErrDuplicateName
		}
		return Category{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}

	return c, nil
}
