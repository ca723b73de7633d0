package note

import (
	"context"

	"github.com/ribgsilva/notes-manager/persistence/v1/note"
	"github.com/ribgsilva/notes-manager/sys"
)

// Search matches the term against title and content case-insensitively.
// Archived notes are excluded unless asked for. No pagination.
func Search(ctx context.Context, r *sys.Resources, term string, includeArchived bool, categoryIds []uint64) ([]Note, error) {
	f := note.Filter{Term: term, CategoryIds: categoryIds}
	if !includeArchived {
		archived := false
		f.Archived = &archived
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	rows, err := note.Search(dbCtx, r.Database, f)
	if err != nil {
		return nil, err
	}

	return hydrate(dbCtx, r.Database, rows)
}
