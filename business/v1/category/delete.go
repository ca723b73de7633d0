package category

import (
	"context"

	"github.com/ribgsilva/notes-manager/business/fault"
	"github.com/ribgsilva/notes-manager/persistence/v1/category"
	"github.com/ribgsilva/notes-manager/sys"
)

// Delete removes the category and its association rows; notes stay.
func Delete(ctx context.Context, r *sys.Resources, id uint64) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	current, err := category.Find(dbCtx, r.Database, id)
	if err != nil {
		return err
	}
	if current.Id == 0 {
		return fault.NotFound{Resource: "Category", Id: id}
	}

	return category.Delete(dbCtx, r.Database, id)
}
