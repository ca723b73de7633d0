// Package handler adapts handler functions to gin and maps business faults to status codes.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/fault"
)

// Result is what every handler returns: a status code and an optional body.
type Result struct {
	Status int
	Body   any
}

// Error is the json body sent for every failed request.
type Error struct {
	Message string `json:"message"`
}

// Wrapper adapts a Result-returning handler into a gin handler.
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := h(ctx)
		if result.Body == nil {
			ctx.Status(result.Status)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}

// FromError maps a business error to its http result: not-found to 404, validation
// to 400, duplicate to 409, anything else to 500.
func FromError(err error) Result {
	var notFound fault.NotFound
	var validation fault.Validation
	var duplicate fault.Duplicate

	switch {
	case errors.As(err, &notFound):
		return Result{Status: http.StatusNotFound, Body: Error{Message: notFound.Error()}}
	case errors.As(err, &validation):
		return Result{Status: http.StatusBadRequest, Body: Error{Message: validation.Error()}}
	case errors.As(err, &duplicate):
		return Result{Status: http.StatusConflict, Body: Error{Message: duplicate.Error()}}
	default:
		return Result{Status: http.StatusInternalServerError, Body: Error{Message: err.Error()}}
	}
}
