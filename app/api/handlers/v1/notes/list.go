package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/note"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// List godoc
// @Summary List notes
// @Description Paginated listing of active notes; pass archived=true for the archived listing
// @Tags Note
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(10)
// @Param archived query bool false "List archived notes instead of active ones"
// @Param category_ids query []int false "Filter by category ids"
// @Success 200 {object} note.Page
// @Failure 400 {object} handler.Error
// @Router /v1/notes [get]
func List(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		page, err := handler.PageParams(ctx)
		if err != nil {
			return handler.FromError(err)
		}

		archived, err := handler.QueryBool(ctx, "archived", false)
		if err != nil {
			return handler.FromError(err)
		}

		categoryIds, err := handler.QueryIds(ctx, "category_ids")
		if err != nil {
			return handler.FromError(err)
		}

		var listing note.Page
		if archived {
			listing, err = note.ArchivedNotes(ctx, r, page.Page, page.PageSize, categoryIds)
		} else {
			listing, err = note.ActiveNotes(ctx, r, page.Page, page.PageSize, categoryIds)
		}
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   listing,
		}
	}
}
