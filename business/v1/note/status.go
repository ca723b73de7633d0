package note

import (
	"context"

	"github.com/ribgsilva/notes-manager/business/fault"
	"github.com/ribgsilva/notes-manager/persistence/v1/note"
	"github.com/ribgsilva/notes-manager/sys"
)

// UpdateStatus moves a todo between statuses. Any status is reachable from any
// other; the only constraints are a todo-typed note and a recognized value.
func UpdateStatus(ctx context.Context, r *sys.Resources, id uint64, status string) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	// absent notes answer 404 even when the requested status is also bad
	current, err := note.Find(dbCtx, r.Database, id)
	if err != nil {
		return Note{}, err
	}
	if current.Id == 0 {
		return Note{}, fault.NotFound{Resource: "Note", Id: id}
	}

	switch status {
	case note.StatusPending, note.StatusInProgress, note.StatusCompleted:
	default:
		return Note{}, fault.Validation{Reason: "Invalid status. Must be one of: pending, in_progress, completed"}
	}

	if current.NoteType != note.TypeTodo {
		return Note{}, fault.Validation{Reason: "Note is not a todo item"}
	}

	updated, err := note.Update(dbCtx, r.Database, id, note.UpdateNote{TodoStatus: &status})
	if err != nil {
		return Note{}, err
	}
	if updated.Id == 0 {
		return Note{}, fault.NotFound{Resource: "Note", Id: id}
	}

	hydrated, err := hydrate(dbCtx, r.Database, []note.Note{updated})
	if err != nil {
		return Note{}, err
	}

	evictNote(ctx, r, id)
	cacheNote(ctx, r, updated)

	return hydrated[0], nil
}
