package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/note"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Archive godoc
// @Summary Archive a note
// @Description Flags the note as archived; archiving an archived note succeeds unchanged
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id}/archive [patch]
func Archive(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := handler.PathId(ctx)
		if err != nil {
			return handler.FromError(err)
		}

		archived, err := note.Archive(ctx, r, id)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   archived,
		}
	}
}

// Unarchive godoc
// @Summary Unarchive a note
// @Description Puts the note back into the active listings
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id}/unarchive [patch]
func Unarchive(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := handler.PathId(ctx)
		if err != nil {
			return handler.FromError(err)
		}

		unarchived, err := note.Unarchive(ctx, r, id)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   unarchived,
		}
	}
}
