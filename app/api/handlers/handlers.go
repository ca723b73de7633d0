package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/app/api/handlers/v1/categories"
	"github.com/ribgsilva/notes-manager/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes-manager/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notes-manager/platform/web/handler"
	"github.com/ribgsilva/notes-manager/sys"
)

func MapDefaults(r *gin.Engine, res *sys.Resources) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get(res)))
}

func MapApi(r *gin.Engine, res *sys.Resources) {
	r.POST("/v1/notes", handler.Wrapper(notes.Create(res)))
	r.GET("/v1/notes", handler.Wrapper(notes.List(res)))
	r.GET("/v1/notes/:id", handler.Wrapper(notes.Get(res)))
	r.PUT("/v1/notes/:id", handler.Wrapper(notes.Update(res)))
	r.DELETE("/v1/notes/:id", handler.Wrapper(notes.Delete(res)))
	r.PATCH("/v1/notes/:id/archive", handler.Wrapper(notes.Archive(res)))
	r.PATCH("/v1/notes/:id/unarchive", handler.Wrapper(notes.Unarchive(res)))
	r.PATCH("/v1/notes/:id/status", handler.Wrapper(notes.UpdateStatus(res)))

	r.GET("/v1/todos", handler.Wrapper(notes.Todos(res)))

	r.POST("/v1/categories", handler.Wrapper(categories.Create(res)))
	r.GET("/v1/categories", handler.Wrapper(categories.List(res)))
	r.GET("/v1/categories/:id", handler.Wrapper(categories.Get(res)))
	r.PUT("/v1/categories/:id", handler.Wrapper(categories.Update(res)))
	r.DELETE("/v1/categories/:id", handler.Wrapper(categories.Delete(res)))

	r.GET("/v1/search/notes", handler.Wrapper(notes.Search(res)))
	r.GET("/v1/search/categories", handler.Wrapper(categories.Search(res)))
}
