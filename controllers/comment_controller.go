package controllers

import (
	"errors"
	"net/http"

	"github.com/DennisSchenkel/sessionminds-backend/constants"
	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ICommentController interface {
	FindByTool(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type CommentController struct {
	service services.ICommentService
}

func NewCommentController(service services.ICommentService) ICommentController {
	return &CommentController{service: service}
}

func (c *CommentController) FindByTool(ctx *gin.Context) {
	toolID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	offset, limit := paginationParams(ctx)
	comments, count, err := c.service.GetCommentsByTool(toolID, offset, limit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrToolNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.PaginatedResponse{Count: count, Results: comments})
}

func (c *CommentController) FindByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	comment, err := c.service.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrCommentNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

func (c *CommentController) Create(ctx *gin.Context) {
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

	var input dto.CreateCommentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	comment, err := c.service.CreateComment(toolID, input, user)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrToolNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

func (c *CommentController) Update(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateCommentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	comment, err := c.service.UpdateComment(id, input, user)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrCommentNotFound})
		case errors.Is(err, services.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrNotAllowed})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

func (c *CommentController) Delete(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	if err := c.service.DeleteComment(id, user); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrCommentNotFound})
		case errors.Is(err, services.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrNotAllowed})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}
