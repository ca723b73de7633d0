package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/note"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Update godoc
// @Summary Update a note
// @Description Updates the supplied fields only; supplying category_ids replaces the association set
// @Tags Note
// @Accept json
// @Produce json
// @Param id path int true "Note id"
// @Param note body note.UpdateNote true "Fields to update"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [put]
func Update(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := handler.PathId(ctx)
		if err != nil {
			return handler.FromError(err)
		}

		var u note.UpdateNote
		if err := ctx.ShouldBindJSON(&u); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid request body: " + err.Error()},
			}
		}

		updated, err := note.Update(ctx, r, id, u)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   updated,
		}
	}
}
