package note

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/ribgsilva/notes-manager/persistence/v1/category"
)

// ReplaceCategories swaps the full association set of a note: clear then set,
// never a merge. Run it inside the same transaction as the note write.
func ReplaceCategories(ctx context.Context, q sqlx.ExtContext, noteId uint64, categoryIds []uint64) error {
	query, args, err := builder().
		Delete("note_categories").
		Where(sq.Eq{"note_id": noteId}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear categories query: %w", err)
	}
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear note categories: %w", err)
	}

	if len(categoryIds) == 0 {
		return nil
	}

	b := builder().Insert("note_categories").Columns("note_id", "category_id")
	for _, categoryId := range categoryIds {
		b = b.Values(noteId, categoryId)
	}
	query, args, err = b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set categories query: %w", err)
	}
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set note categories: %w", err)
	}

	return nil
}

type noteCategory struct {
	NoteId uint64 `db:"note_id"`
	category.Category
}

// CategoriesFor hydrates the categories of a batch of notes in one round trip,
// keyed by note id. Notes without categories are simply absent from the map.
func CategoriesFor(ctx context.Context, q sqlx.ExtContext, noteIds []uint64) (map[uint64][]category.Category, error) {
	byNote := make(map[uint64][]category.Category)
	if len(noteIds) == 0 {
		return byNote, nil
	}

	query, args, err := builder().
		Select("nc.note_id", "c.id", "c.name", "c.color", "c.created_at", "c.updated_at").
		From("note_categories nc").
		Join("categories c ON c.id = nc.category_id").
		Where(sq.Eq{"nc.note_id": noteIds}).
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build categories query: %w", err)
	}

	rows := make([]noteCategory, 0)
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query categories stmt: %w", err)
	}

	for _, row := range rows {
		byNote[row.NoteId] = append(byNote[row.NoteId], row.Category)
	}

	return byNote, nil
}
