package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/v1/category"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Create godoc
// @Summary Create a category
// @Description Creates a category; names are unique, color defaults to #3B82F6
// @Tags Category
// @Accept json
// @Produce json
// @Param category body category.NewCategory true "New category"
// @Success 201 {object} category.Category
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /v1/categories [post]
func Create(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		var newC category.NewCategory
		if err := ctx.ShouldBindJSON(&newC); err != nil {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "invalid request body: " + err.Error()},
			}
		}

		if newC.Color != "" && !category.ValidColor(newC.Color) {
			return handler.Result{
				Status: http.StatusBadRequest,
				Body:   handler.Error{Message: "color must be a hex color like #3B82F6"},
			}
		}

		created, err := category.Create(ctx, r, newC)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusCreated,
			Body:   created,
		}
	}
}
