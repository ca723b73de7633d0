package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/notes-manager/business/fault"
	pcategory "github.com/ribgsilva/notes-manager/persistence/v1/category"
	"github.com/ribgsilva/notes-manager/persistence/v1/note"
	"github.com/ribgsilva/notes-manager/sys"
)

// Create stores a new note and its category associations in one transaction:
// either both land or neither does.
func Create(ctx context.Context, r *sys.Resources, newN NewNote) (Note, error) {
	if newN.NoteType == "" {
		newN.NoteType = note.TypeNote
	}
	if newN.TodoStatus == "" {
		newN.TodoStatus = note.StatusPending
	}
	if newN.Priority == "" {
		newN.Priority = note.PriorityMedium
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	tx, err := r.Database.BeginTxx(dbCtx, nil)
	if err != nil {
		return Note{}, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if len(newN.CategoryIds) > 0 {
		cats, err := pcategory.FindByIds(dbCtx, tx, newN.CategoryIds)
		if err != nil {
			return Note{}, err
		}
		if len(cats) != len(newN.CategoryIds) {
			return Note{}, fault.Validation{Reason: "One or more category IDs are invalid"}
		}
	}

	created, err := note.Insert(dbCtx, tx, note.NewNote{
		Title:      newN.Title,
		Content:    newN.Content,
		NoteType:   newN.NoteType,
		TodoStatus: newN.TodoStatus,
		Priority:   newN.Priority,
		DueDate:    newN.DueDate,
	})
	if err != nil {
		return Note{}, err
	}

	if len(newN.CategoryIds) > 0 {
		if err := note.ReplaceCategories(dbCtx, tx, created.Id, newN.CategoryIds); err != nil {
			return Note{}, err
		}
	}

	hydrated, err := hydrate(dbCtx, tx, []note.Note{created})
	if err != nil {
		return Note{}, err
	}

	if err := tx.Commit(); err != nil {
		return Note{}, fmt.Errorf("failed to commit tx: %w", err)
	}

	cacheNote(ctx, r, created)

	return hydrated[0], nil
}
