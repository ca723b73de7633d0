package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/category"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Update godoc
// @Summary Update a category
// @Description Applies a partial update to a category
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "Category id"
// @Param category body category.UpdateCategory true "Fields to update"
// @Success 200 {object} category.Category
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /v1/categories/{id} [put]
func Update(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := handler.PathId(ctx)
		if err != nil {
			return handler.FromError(err)
		}

		var upd category.UpdateCategory
		if err := ctx.ShouldBindJSON(&upd); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid request body: " + err.Error()},
			}
		}

		if upd.Color != nil && !category.ValidColor(*upd.Color) {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "color must be a hex color like #3B82F6"},
			}
		}

		updated, err := category.Update(ctx, r, id, upd)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   updated,
		}
	}
}
