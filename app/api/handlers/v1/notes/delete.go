package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/note"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Delete godoc
// @Summary Delete a note
// @Description Removes the note and its category associations
// @Tags Note
// @Param id path int true "Note id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func Delete(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := handler.PathId(ctx)
		if err != nil {
			return handler.FromError(err)
		}

		if err := note.Delete(ctx, r, id); err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusNoContent,
		}
	}
}
