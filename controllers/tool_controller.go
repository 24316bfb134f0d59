package controllers

import (
	"errors"
	"net/http"

	"github.com/DennisSchenkel/sessionminds-backend/constants"
	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/infra"
	"github.com/DennisSchenkel/sessionminds-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IToolController interface {
	FindAll(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	FindBySlug(ctx *gin.Context)
	FindByUser(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ToolController struct {
	service services.IToolService
}

func NewToolController(service services.IToolService) IToolController {
	return &ToolController{service: service}
}

func (c *ToolController) FindAll(ctx *gin.Context) {
	offset, limit := paginationParams(ctx)
	tools, count, err := c.service.GetTools(offset, limit, currentUser(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.PaginatedResponse{Count: count, Results: tools})
}

func (c *ToolController) FindByID(ctx *gin.Context) {
	toolID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	tool, err := c.service.GetToolByID(toolID, currentUser(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrToolNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, tool)
}

func (c *ToolController) FindBySlug(ctx *gin.Context) {
	tool, err := c.service.GetToolBySlug(ctx.Param("slug"), currentUser(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrToolNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, tool)
}

func (c *ToolController) FindByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userID")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	offset, limit := paginationParams(ctx)
	tools, count, err := c.service.GetToolsByUser(userID, offset, limit, currentUser(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.PaginatedResponse{Count: count, Results: tools})
}

func (c *ToolController) Create(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input dto.CreateToolInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newTool, err := c.service.CreateTool(input, user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "A tool with this title already exists"})
			return
		}
		infra.Logger.WithError(err).Error("Create tool failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusCreated, newTool)
}

func (c *ToolController) Update(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	toolID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateToolInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	updatedTool, err := c.service.UpdateTool(toolID, user, input)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrToolNotFound})
		case errors.Is(err, services.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrNotAllowed})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.JSON(http.StatusOK, updatedTool)
}

func (c *ToolController) Delete(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	toolID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	if err := c.service.DeleteTool(toolID, user); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrToolNotFound})
		case errors.Is(err, services.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrNotAllowed})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}
