package controllers

import (
	"errors"
	"net/http"

	"github.com/DennisSchenkel/sessionminds-backend/constants"
	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/DennisSchenkel/sessionminds-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IProfileController interface {
	FindAll(ctx *gin.Context)
	FindByID(ctx *gin.Context)
	FindByUserID(ctx *gin.Context)
	Update(ctx *gin.Context)
	FindAllUsers(ctx *gin.Context)
	FindUserByID(ctx *gin.Context)
	UpdateUser(ctx *gin.Context)
	DeleteUser(ctx *gin.Context)
}

type ProfileController struct {
	service services.IProfileService
}

func NewProfileController(service services.IProfileService) IProfileController {
	return &ProfileController{service: service}
}

func (c *ProfileController) FindAll(ctx *gin.Context) {
	offset, limit := paginationParams(ctx)
	profiles, count, err := c.service.GetProfiles(offset, limit, currentUser(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.PaginatedResponse{Count: count, Results: profiles})
}

func (c *ProfileController) FindByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	profile, err := c.service.GetProfileByID(id, currentUser(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrProfileNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func (c *ProfileController) FindByUserID(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userID")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	profile, err := c.service.GetProfileByUserID(userID, currentUser(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrProfileNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func (c *ProfileController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	profile, err := c.service.UpdateProfile(id, currentUser(ctx), input)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrProfileNotFound})
		case errors.Is(err, services.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrNotAllowed})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func (c *ProfileController) FindAllUsers(ctx *gin.Context) {
	offset, limit := paginationParams(ctx)
	users, count, err := c.service.GetUsers(offset, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.PaginatedResponse{Count: count, Results: users})
}

func (c *ProfileController) FindUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	user, err := c.service.GetUserByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *ProfileController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	user, err := c.service.UpdateUser(id, currentUser(ctx), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrNotAllowed})
		case errors.Is(err, repositories.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *ProfileController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	if err := c.service.DeleteUser(id, currentUser(ctx)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to delete this profile!"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}
