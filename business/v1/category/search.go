package category

import (
	"context"

	"github.com/ribgsilva/notes-manager/persistence/v1/category"
	"github.com/ribgsilva/notes-manager/sys"
)

// Search matches category names case-insensitively, ordered by name.
func Search(ctx context.Context, r *sys.Resources, term string) ([]Category, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	found, err := category.Search(dbCtx, r.Database, term)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(found))
	for _, c := range found {
		categories = append(categories, Category(c))
	}

	return categories, nil
}
