package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Find returns the category with the given id, or a zero Category when absent.
func Find(ctx context.Context, q sqlx.ExtContext, id uint64) (Category, error) {
	query, args, err := builder().
		Select(columns...).
		From("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return Category{}, fmt.Errorf("failed to build find query: %w", err)
	}

	var c Category
	if err := sqlx.GetContext(ctx, q, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, nil
		}
		return Category{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	return c, nil
}

// FindByName returns the category with the exact given name, or a zero Category when absent.
func FindByName(ctx context.Context, q sqlx.ExtContext, name string) (Category, error) {
	query, args, err := builder().
		Select(columns...).
		From("categories").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return Category{}, fmt.Errorf("failed to build find by name query: %w", err)
	}

	var c Category
	if err := sqlx.GetContext(ctx, q, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, nil
		}
		return Category{}, fmt.Errorf("failed to query find by name stmt: %w", err)
	}

	return c, nil
}

// FindByIds returns the matching subset of the given ids. Callers compare
// cardinality against the request to detect invalid ids.
func FindByIds(ctx context.Context, q sqlx.ExtContext, ids []uint64) ([]Category, error) {
	if len(ids) == 0 {
		return []Category{}, nil
	}

	query, args, err := builder().
		Select(columns...).
		From("categories").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find by ids query: %w", err)
	}

	categories := make([]Category, 0, len(ids))
	if err := sqlx.SelectContext(ctx, q, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query find by ids stmt: %w", err)
	}

	return categories, nil
}
