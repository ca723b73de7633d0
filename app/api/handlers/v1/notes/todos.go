package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/fault"
	"github.com/ribgsilva/notes-manager/business/v1/note"
	pnote "github.com/ribgsilva/notes-manager/persistence/v1/note"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Todos godoc
// @Summary List todos
// @Description Paginated listing of non-archived todo notes, optionally narrowed by status, priority and categories
// @Tags Note
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(10)
// @Param status query string false "Todo status" Enums(pending, in_progress, completed)
// @Param priority query string false "Priority" Enums(low, medium, high)
// @Param category_ids query []int false "Filter by category ids"
// @Success 200 {object} note.Page
// @Failure 400 {object} handler.Error
// @Router /v1/todos [get]
func Todos(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		page, err := handler.PageParams(ctx)
		if err != nil {
			return handler.FromError(err)
		}

		status := ctx.Query("status")
		switch status {
		case "", pnote.StatusPending, pnote.StatusInProgress, pnote.StatusCompleted:
		default:
			return handler.FromError(fault.Validation{Reason: "Invalid status. Must be one of: pending, in_progress, completed"})
		}

		priority := ctx.Query("priority")
		switch priority {
		case "", pnote.PriorityLow, pnote.PriorityMedium, pnote.PriorityHigh:
		default:
			return handler.FromError(fault.Validation{Reason: "Invalid priority. Must be one of: low, medium, high"})
		}

		categoryIds, err := handler.QueryIds(ctx, "category_ids")
		if err != nil {
			return handler.FromError(err)
		}

		listing, err := note.Todos(ctx, r, page.Page, page.PageSize, status, priority, categoryIds)
		if err != nil {
			return handler.FromError(err)
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   listing,
		}
	}
}
