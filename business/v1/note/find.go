package note

import (
	"context"

	"github.com/ribgsilva/notes-manager/business/fault"
	"github.com/ribgsilva/notes-manager/persistence/v1/note"
	"github.com/ribgsilva/notes-manager/sys"
)

// Find returns the note with its categories. The cache answers for the note
// row; categories always come from the store so they are never stale.
func Find(ctx context.Context, r *sys.Resources, id uint64) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	row, ok := cachedNote(ctx, r, id)
	if !ok {
		found, err := note.Find(dbCtx, r.Database, id)
		if err != nil {
			return Note{}, err
		}
		if found.Id == 0 {
			return Note{}, fault.NotFound{Resource: "Note", Id: id}
		}

		cacheNote(ctx, r, found)
		row = found
	}

	hydrated, err := hydrate(dbCtx, r.Database, []note.Note{row})
	if err != nil {
		return Note{}, err
	}

	return hydrated[0], nil
}
