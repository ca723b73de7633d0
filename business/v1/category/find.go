package category

import (
	"context"

	"github.com/ribgsilva/notes-manager/business/fault"
	"github.com/ribgsilva/notes-manager/persistence/v1/category"
	"github.com/ribgsilva/notes-manager/sys"
)

func Find(ctx context.Context, r *sys.Resources, id uint64) (Category, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	found, err := category.Find(dbCtx, r.Database, id)
	if err != nil {
		return Category{}, err
	}
	if found.Id == 0 {
		return Category{}, fault.NotFound{Resource: "Category", Id: id}
	}

	return Category(found), nil
}
