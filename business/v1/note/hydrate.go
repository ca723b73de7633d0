package note

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ribgsilva/notes-manager/business/v1/category"
	pcategory "github.com/ribgsilva/notes-manager/persistence/v1/category"
	"github.com/ribgsilva/notes-manager/persistence/v1/note"
)

// hydrate attaches categories to a batch of note rows in one extra round trip.
func hydrate(ctx context.Context, q sqlx.ExtContext, rows []note.Note) ([]Note, error) {
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Id)
	}

	byNote, err := note.CategoriesFor(ctx, q, ids)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, toNote(row, byNote[row.Id]))
	}

	return notes, nil
}

func toNote(row note.Note, cats []pcategory.Category) Note {
	categories := make([]category.Category, 0, len(cats))
	for _, c := range cats {
		categories = append(categories, category.Category(c))
	}

	return Note{
		Id:         row.Id,
		Title:      row.Title,
		Content:    row.Content,
		NoteType:   row.NoteType,
		TodoStatus: row.TodoStatus,
		Priority:   row.Priority,
		DueDate:    row.DueDate,
		IsArchived: row.IsArchived,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
		Categories: categories,
	}
}
