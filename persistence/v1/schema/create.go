// Package schema creates and drops the database objects of the notes store.
package schema

import (
	"context"
	"errors"

	"github.com/ribgsilva/notes-manager/sys"
)

func Create(ctx context.Context, r *sys.Resources) error {
	if _, err := r.Database.ExecContext(ctx, schema); err != nil {
		return errors.New("create schema: " + err.Error())
	}

	return nil
}
