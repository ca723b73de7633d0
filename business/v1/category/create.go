package category

import (
	"context"
	"errors"

	"github.com/ribgsilva/notes-manager/business/fault"
	"github.com/ribgsilva/notes-manager/persistence/v1/category"
	"github.com/ribgsilva/notes-manager/sys"
)

// Create stores a new category. The name check gives the friendly duplicate
// message; the unique constraint on the store is what wins a concurrent race.
func Create(ctx context.Context, r *sys.Resources, newC NewCategory) (Category, error) {
	if newC.Color == "" {
		newC.Color = DefaultColor
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	existing, err := category.FindByName(dbCtx, r.Database, newC.Name)
	if err != nil {
		return Category{}, err
	}
	if existing.Id != 0 {
		return Category{}, fault.Duplicate{Resource: "Category", Field: "name", Value: newC.Name}
	}

	created, err := category.Insert(dbCtx, r.Database, category.NewCategory(newC))
	if err != nil {
		if errors.Is(err, category.ErrDuplicateName) {
			return Category{}, fault.Duplicate{Resource: "Category", Field: "name", Value: newC.Name}
		}
		return Category{}, err
	}

	return Category(created), nil
}
