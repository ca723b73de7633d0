package schema

import (
	"context"
	"errors"

	"github.com/ribgsilva/notes-manager/sys"
)

func Drop(ctx context.Context, r *sys.Resources) error {
	if _, err := r.Database.ExecContext(ctx, dropSchema); err != nil {
		return errors.New("drop schema: " + err.Error())
	}

	return nil
}
