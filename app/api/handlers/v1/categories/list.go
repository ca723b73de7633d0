package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/category"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// List godoc
// @Summary List categories
// @Description Lists every category ordered by name; with_count=true includes note counts
// @Tags Category
// @Produce json
// @Param with_count query bool false "Include the number of notes per category"
// @Success 200 {array} category.CategoryWithCount
// @Failure 500 {object} handler.Error
// @Router /v1/categories [get]
func List(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		withCount, err := handler.QueryBool(ctx, "with_count", false)
		if err != nil {
			return handler.FromError(err)
		}

		if withCount {
			cs, err := category.ListWithCount(ctx, r)
			if err != nil {
				return handler.FromError(err)
			}
			return handler.Result{
				Status: http.StatusOK,
				Body:   cs,
			}
		}

		cs, err := category.List(ctx, r)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   cs,
		}
	}
}
