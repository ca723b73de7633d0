package note

import (
	"context"

	"github.com/ribgsilva/notes-manager/business/fault"
	"github.com/ribgsilva/notes-manager/persistence/v1/note"
	"github.com/ribgsilva/notes-manager/sys"
)

// Delete removes the note and its association rows; categories stay.
func Delete(ctx context.Context, r *sys.Resources, id uint64) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	current, err := note.Find(dbCtx, r.Database, id)
	if err != nil {
		return err
	}
	if current.Id == 0 {
		return fault.NotFound{Resource: "Note", Id: id}
	}

	if err := note.Delete(dbCtx, r.Database, id); err != nil {
		return err
	}

	evictNote(ctx, r, id)

	return nil
}
