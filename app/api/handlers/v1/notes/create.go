package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/note"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Create godoc
// @Summary Create a note
// @Description Creates a note or todo, optionally associated to categories
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "New note"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Router /v1/notes [post]
func Create(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		var newN note.NewNote
		if err := ctx.ShouldBindJSON(&newN); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid request body: " + err.Error()},
			}
		}

		created, err := note.Create(ctx, r, newN)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusCreated,
			Body:   created,
		}
	}
}
