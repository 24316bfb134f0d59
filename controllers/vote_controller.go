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

type IVoteController interface {
	FindAll(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	FindByTool(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type VoteController struct {
	service services.IVoteService
}

func NewVoteController(service services.IVoteService) IVoteController {
	return &VoteController{service: service}
}

func (c *VoteController) FindAll(ctx *gin.Context) {
	offset, limit := paginationParams(ctx)
	votes, count, err := c.service.GetVotes(offset, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.PaginatedResponse{Count: count, Results: votes})
}

func (c *VoteController) FindByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	vote, err := c.service.GetVoteByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrVoteNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, vote)
}

func (c *VoteController) FindByTool(ctx *gin.Context) {
	toolID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	votes, err := c.service.GetVotesByTool(toolID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": votes})
}

func (c *VoteController) Create(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input dto.CreateVoteInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	vote, err := c.service.CreateVote(input, user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyVoted):
			ctx.JSON(http.StatusConflict, gin.H{"error": services.ErrAlreadyVoted.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrToolNotFound})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.JSON(http.StatusCreated, vote)
}

func (c *VoteController) Delete(ctx *gin.Context) {
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

	if err := c.service.DeleteVote(id, user); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrVoteNotFound})
		case errors.Is(err, services.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrNotAllowed})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}
