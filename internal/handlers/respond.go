package handlers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/uninest-dev/uninest/internal/apperrors"
)

// Pagination is the page envelope returned by every list endpoint.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// pageParams reads page/limit query params with the 1/20 defaults.
func pageParams(ctx *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}

// abortWithError converts a taxonomy error into the response shape the
// clients expect. Internal errors are logged and masked.
func abortWithError(ctx *gin.Context, err error) {
	if apperrors.Status(err) == 500 {
		log.Printf("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	}

	ctx.JSON(apperrors.Status(err), gin.H{
		"success": false,
		"message": apperrors.Message(err),
	})
}
