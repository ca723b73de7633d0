package category

import (
	"context"

	"github.com/ribgsilva/notes-manager/persistence/v1/category"
	"github.com/ribgsilva/notes-manager/sys"
)

// List returns every category ordered by name.
func List(ctx context.Context, r *sys.Resources) ([]Category, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	found, err := category.List(dbCtx, r.Database)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(found))
	for _, c := range found {
		categories = append(categories, Category(c))
	}

	return categories, nil
}

// ListWithCount returns every category with its note count, archived notes
// included; categories with zero notes still appear.
func ListWithCount(ctx context.Context, r *sys.Resources) ([]CategoryWithCount, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	found, err := category.ListWithNoteCounts(dbCtx, r.Database)
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryWithCount, 0, len(found))
	for _, c := range found {
		categories = append(categories, CategoryWithCount{
			Category:   Category(c.Category),
			NotesCount: c.NotesCount,
		})
	}

	return categories, nil
}
