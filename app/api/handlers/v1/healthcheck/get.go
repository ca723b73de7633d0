package healthcheck

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

// Get godoc
// @Summary Health check
// @Description Checks the service and its database connection
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} handler.Error
// @Router /v1/healthcheck [get]
func Get(r *sys.Resources) func(ctx *gin.Context) handler.Result {
	return func(ctx *gin.Context) handler.Result {
		pingCtx, cancel := context.WithTimeout(ctx, r.Configs.Database.PingTimeout)
		defer cancel()

		if err := r.Database.PingContext(pingCtx); err != nil {
			r.Log.Errorw("healthcheck database ping", "error", err)
			return handler.Result{
				Status: http.StatusServiceUnavailable,
				Body:   handler.Error{Message: "database unavailable"},
			}
		}

		return handler.Result{
			Status: http.StatusOK,
			Body:   gin.H{"status": "healthy"},
		}
	}
}
