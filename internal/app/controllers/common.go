package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/researchdesk/internal/middleware"
)

// parseIDParam reads a positive integer path parameter. On failure it writes a 400
// response naming entity and returns false.
func parseIDParam(ctx *gin.Context, name, entity string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.AbortWithDetail(ctx, http.StatusBadRequest, "Invalid "+entity+" ID")
		return 0, false
	}
	return id, true
}
