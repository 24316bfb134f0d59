package controllers

import (
	"strconv"

	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/utils"
	"github.com/gin-gonic/gin"
)

func paginationParams(ctx *gin.Context) (offset int, limit int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "0"))
	return utils.CalculatePagination(page, size)
}

// currentUser returns the principal bound by the auth middleware, or nil for
// anonymous requests.
func currentUser(ctx *gin.Context) *models.User {
	value, exists := ctx.Get("user")
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
