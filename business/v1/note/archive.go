package note

import (
	"context"

	"github.com/ribgsilva/notes-manager/business/fault"
	"github.com/ribgsilva/notes-manager/persistence/v1/note"
	"github.com/ribgsilva/notes-manager/sys"
)

// Archive flags the note archived. Archiving an archived note is a no-op success.
func Archive(ctx context.Context, r *sys.Resources, id uint64) (Note, error) {
	return setArchived(ctx, r, id, true)
}

// Unarchive puts the note back into the active listings.
func Unarchive(ctx context.Context, r *sys.Resources, id uint64) (Note, error) {
	return setArchived(ctx, r, id, false)
}

func setArchived(ctx context.Context, r *sys.Resources, id uint64, archived bool) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	updated, err := note.Update(dbCtx, r.Database, id, note.UpdateNote{IsArchived: &archived})
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
