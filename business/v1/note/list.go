package note

import (
	"context"

	"github.com/ribgsilva/notes-manager/persistence/v1/note"
	"github.com/ribgsilva/notes-manager/sys"
)

// ActiveNotes lists non-archived notes, optionally narrowed to categories.
func ActiveNotes(ctx context.Context, r *sys.Resources, page, pageSize int, categoryIds []uint64) (Page, error) {
	archived := false
	return pageOf(ctx, r, note.Filter{Archived: &archived, CategoryIds: categoryIds}, page, pageSize)
}

// ArchivedNotes lists archived notes, optionally narrowed to categories.
func ArchivedNotes(ctx context.Context, r *sys.Resources, page, pageSize int, categoryIds []uint64) (Page, error) {
	archived := true
	return pageOf(ctx, r, note.Filter{Archived: &archived, CategoryIds: categoryIds}, page, pageSize)
}

// Todos lists non-archived todo notes, optionally narrowed by status, priority
// and categories.
func Todos(ctx context.Context, r *sys.Resources, page, pageSize int, status, priority string, categoryIds []uint64) (Page, error) {
	archived := false
	f := note.Filter{
		Archived:    &archived,
		TodosOnly:   true,
		Status:      status,
		Priority:    priority,
		CategoryIds: categoryIds,
	}
	return pageOf(ctx, r, f, page, pageSize)
}

// pageOf runs the list and the count under the same filter, so the envelope
// totals always agree with the rows.
func pageOf(ctx context.Context, r *sys.Resources, f note.Filter, page, pageSize int) (Page, error) {
	skip := (page - 1) * pageSize

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	rows, err := note.List(dbCtx, r.Database, f, uint64(skip), uint64(pageSize))
	if err != nil {
		return Page{}, err
	}

	total, err := note.Count(dbCtx, r.Database, f)
	if err != nil {
		return Page{}, err
	}

	items, err := hydrate(dbCtx, r.Database, rows)
	if err != nil {
		return Page{}, err
	}

	var totalPages int64
	if total > 0 {
		totalPages = (total + int64(pageSize) - 1) / int64(pageSize)
	}

	return Page{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
