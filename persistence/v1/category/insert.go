package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func Insert(ctx context.Context, q sqlx.ExtContext, newC NewCategory) (Category, error) {
	now := time.Now().UTC()

	query, args, err := builder().
		Insert("categories").
		Columns("name", "color", "created_at", "updated_at").
		Values(newC.Name, newC.Color, now, now).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return Category{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	var c Category
	if err := sqlx.GetContext(ctx, q, &c, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return Category{}, ErrDuplicateName
		}
		return Category{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}

	return c, nil
}
