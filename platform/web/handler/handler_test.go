package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribgsilva/notes-manager/business/fault"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "not found maps to 404",
			err:     fault.NotFound{Resource: "Note", Id: 7},
			status:  http.StatusNotFound,
			message: "Note with id 7 not found",
		},
		{
			name:    "validation maps to 400",
			err:     fault.Validation{Reason: "page must be a positive integer"},
			status:  http.StatusBadRequest,
			message: "page must be a positive integer",
		},
		{
			name:    "duplicate maps to 409",
			err:     fault.Duplicate{Resource: "Category", Field: "name", Value: "work"},
			status:  http.StatusConflict,
			message: "Category with name 'work' already exists",
		},
		{
			name:    "anything else maps to 500",
			err:     errors.New("connection refused"),
			status:  http.StatusInternalServerError,
			message: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromError(tt.err)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, Error{Message: tt.message}, result.Body)
		})
	}
}

func TestWrapper(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes the json body", func(t *testing.T) {
		engine := gin.New()
		engine.GET("/x", Wrapper(func(ctx *gin.Context) Result {
			return Result{Status: http.StatusOK, Body: gin.H{"ok": true}}
		}))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("nil body writes only the status", func(t *testing.T) {
		engine := gin.New()
		engine.DELETE("/x", Wrapper(func(ctx *gin.Context) Result {
			return Result{Status: http.StatusNoContent}
		}))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/x", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func newParamCtx(t *testing.T, target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return ctx
}

func TestPageParams(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := PageParams(newParamCtx(t, "/notes"))
		require.NoError(t, err)
		assert.Equal(t, Pagination{Page: 1, PageSize: 10}, p)
	})

	t.Run("explicit values", func(t *testing.T) {
		p, err := PageParams(newParamCtx(t, "/notes?page=3&page_size=25"))
		require.NoError(t, err)
		assert.Equal(t, Pagination{Page: 3, PageSize: 25}, p)
	})

	t.Run("page below one is rejected", func(t *testing.T) {
		_, err := PageParams(newParamCtx(t, "/notes?page=0"))
		assert.ErrorAs(t, err, &fault.Validation{})
	})

	t.Run("page size above the bound is rejected", func(t *testing.T) {
		_, err := PageParams(newParamCtx(t, "/notes?page_size=101"))
		assert.ErrorAs(t, err, &fault.Validation{})
	})
}

func TestQueryIds(t *testing.T) {
	t.Run("parses repeats", func(t *testing.T) {
		ids, err := QueryIds(newParamCtx(t, "/notes?category_ids=1&category_ids=5"), "category_ids")
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 5}, ids)
	})

	t.Run("rejects non integers", func(t *testing.T) {
		_, err := QueryIds(newParamCtx(t, "/notes?category_ids=abc"), "category_ids")
		assert.ErrorAs(t, err, &fault.Validation{})
	})
}
