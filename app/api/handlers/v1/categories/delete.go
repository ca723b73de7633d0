package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/category"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Delete godoc
// @Summary Delete a category
// @Description Deletes a category; notes keep existing and only lose the association
// @Tags Category
// @Param id path int true "Category id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/categories/{id} [delete]
func Delete(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		id, err := handler.PathId(ctx)
		if err != nil {
			return handler.FromError(err)
		}

		if err := category.Delete(ctx, r, id); err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusNoContent,
		}
	}
}
