package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/category"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Get godoc
// @Summary Get a category
// @Description Fetches a category by its id
// @Tags Category
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} category.Category
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/categories/{id} [get]
func Get(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := handler.PathId(ctx)
		if err != nil {
			return handler.FromError(err)
		}

		c, err := category.Find(ctx, r, id)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   c,
		}
	}
}
