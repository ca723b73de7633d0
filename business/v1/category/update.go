package category

import (
	"context"
	"errors"

	"github.com/ribgsilva/notes-manager/business/fault"
	"github.com/ribgsilva/notes-manager/persistence/v1/category"
	"github.com/ribgsilva/notes-manager/sys"
)

// Update applies the supplied fields only. Renaming to another category's name
// is a duplicate error; renaming to the current name is not.
func Update(ctx context.Context, r *sys.Resources, id uint64, u UpdateCategory) (Category, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()

	current, err := category.Find(dbCtx, r.Database, id)
	if err != nil {
		return Category{}, err
	}
	if current.Id == 0 {
		return Category{}, fault.NotFound{Resource: "Category", Id: id}
	}

	if u.Name != nil && *u.Name != current.Name {
		existing, err := category.FindByName(dbCtx, r.Database, *u.Name)
		if err != nil {
			return Category{}, err
		}
		if existing.Id != 0 {
			return Category{}, fault.Duplicate{Resource: "Category", Field: "name", Value: *u.Name}
		}
	}

	updated, err := category.Update(dbCtx, r.Database, id, category.UpdateCategory(u))
	if err != nil {
		if errors.Is(err, category.ErrDuplicateName) && u.Name != nil {
			return Category{}, fault.Duplicate{Resource: "Category", Field: "name", Value: *u.Name}
		}
		return Category{}, err
	}
	if updated.Id == 0 {
		return Category{}, fault.NotFound{Resource: "Category", Id: id}
	}

	return Category(updated), nil
}
