package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/fault"
	"github.com/ribgsilva/notes-manager/business/v1/note"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Search godoc
// @Summary Search notes
// @Description Case-insensitive match of the term against title and content; archived notes excluded unless requested
// @Tags Note
// @Produce json
// @Param q query string true "Search term"
// @Param include_archived query bool false "Include archived notes"
// @Param category_ids query []int false "Filter by category ids"
// @Success 200 {array} note.Note
// @Failure 400 {object} handler.Error
// @Router /v1/search/notes [get]
func Search(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		term := ctx.Query("q")
		if term == "" {
			return handler.FromError(fault.Validation{Reason: "q must not be empty"})
		}

		includeArchived, err := handler.QueryBool(ctx, "include_archived", false)
		if err != nil {
			return handler.FromError(err)
		}

		categoryIds, err := handler.QueryIds(ctx, "category_ids")
		if err != nil {
			return handler.FromError(err)
		}

		found, err := note.Search(ctx, r, term, includeArchived, categoryIds)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   found,
		}
	}
}
