package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/notes-manager/business/fault"
	pcategory "github.com/ribgsilva/notes-manager/persistence/v1/category"
	"github.com/ribgsilva/notes-manager/persistence/v1/note"
	"github.com/ribgsilva/notes-manager/sys"
)

// Update applies the supplied fields only. When category_ids is supplied the
// whole association set is replaced, inside the same transaction as the note
// row write.
func Update(ctx context.Context, r *sys.Resources, id uint64, u UpdateNote) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	tx, err := r.Database.BeginTxx(dbCtx, nil)
	if err != nil {
		return Note{}, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	current, err := note.Find(dbCtx, tx, id)
	if err != nil {
		return Note{}, err
	}
	if current.Id == 0 {
		return Note{}, fault.NotFound{Resource: "Note", Id: id}
	}

	// an empty partial writes nothing; updated_at only moves on a real change
	if u.Title == nil && u.Content == nil && u.Priority == nil && u.DueDate == nil &&
		u.IsArchived == nil && u.CategoryIds == nil {
		hydrated, err := hydrate(dbCtx, tx, []note.Note{current})
		if err != nil {
			return Note{}, err
		}
		if err := tx.Commit(); err != nil {
			return Note{}, fmt.Errorf("failed to commit tx: %w", err)
		}
		return hydrated[0], nil
	}

	if u.CategoryIds != nil && len(*u.CategoryIds) > 0 {
		cats, err := pcategory.FindByIds(dbCtx, tx, *u.CategoryIds)
		if err != nil {
			return Note{}, err
		}
		if len(cats) != len(*u.CategoryIds) {
			return Note{}, fault.Validation{Reason: "One or more category IDs are invalid"}
		}
	}

	updated, err := note.Update(dbCtx, tx, id, note.UpdateNote{
		Title:      u.Title,
		Content:    u.Content,
		Priority:   u.Priority,
		DueDate:    u.DueDate,
		IsArchived: u.IsArchived,
	})
	if err != nil {
		return Note{}, err
	}
	if updated.Id == 0 {
		return Note{}, fault.NotFound{Resource: "Note", Id: id}
	}

	if u.CategoryIds != nil {
		if err := note.ReplaceCategories(dbCtx, tx, id, *u.CategoryIds); err != nil {
			return Note{}, err
		}
	}

	hydrated, err := hydrate(dbCtx, tx, []note.Note{updated})
	if err != nil {
		return Note{}, err
	}

	if err := tx.Commit(); err != nil {
		return Note{}, fmt.Errorf("failed to commit tx: %w", err)
	}

	evictNote(ctx, r, id)
	cacheNote(ctx, r, updated)

	return hydrated[0], nil
}
