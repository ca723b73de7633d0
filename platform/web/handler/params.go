package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ribgsilva/notes-manager/business/fault"
)

// Pagination carries the page parameters every listing endpoint accepts.
type Pagination struct {
	Page     int
	PageSize int
}

// PageParams reads page and page_size, applying the 1..100 page_size bound.
func PageParams(ctx *gin.Context) (Pagination, error) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return Pagination{}, fault.Validation{Reason: "page must be a positive integer"}
	}

	pageSize, err := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		return Pagination{}, fault.Validation{Reason: "page_size must be between 1 and 100"}
	}

	return Pagination{Page: page, PageSize: pageSize}, nil
}

// PathId parses the :id path parameter.
func PathId(ctx *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, fault.Validation{Reason: "invalid id"}
	}
	return id, nil
}

// QueryIds parses a repeated integer query parameter, such as category_ids.
func QueryIds(ctx *gin.Context, name string) ([]uint64, error) {
	raws := ctx.QueryArray(name)
	ids := make([]uint64, 0, len(raws))
	for _, raw := range raws {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fault.Validation{Reason: name + " must contain only integers"}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// QueryBool parses an optional boolean query parameter.
func QueryBool(ctx *gin.Context, name string, def bool) (bool, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fault.Validation{Reason: name + " must be a boolean"}
	}
	return value, nil
}
