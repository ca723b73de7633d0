package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/category"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Search godoc
// @Summary Search categories
// @Description Searches categories by a case-insensitive name match
// @Tags Category
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} category.Category
// @Failure 400 {object} handler.Error
// @Router /v1/search/categories [get]
func Search(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		term := ctx.Query("q")
		if term == "" {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "q is required"},
			}
		}

		cs, err := category.Search(ctx, r, term)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   cs,
		}
	}
}
