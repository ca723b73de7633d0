package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/note"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// UpdateStatus godoc
// @Summary Update a todo status
// @Description Moves a todo note to the given status; rejected for plain notes
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Param status query string true "New todo status" Enums(pending, in_progress, completed)
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id}/status [patch]
func UpdateStatus(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := handler.PathId(ctx)
		if err != nil {
			return handler.FromError(err)
		}

		updated, err := note.UpdateStatus(ctx, r, id, ctx.Query("status"))
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   updated,
		}
	}
}
