package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DennisSchenkel/sessionminds-backend/constants"
	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/infra"
	"github.com/DennisSchenkel/sessionminds-backend/services"
	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	RefreshToken(ctx *gin.Context)
	VerifyToken(ctx *gin.Context)
	BlacklistToken(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Protected(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.Signup(input.Email, input.Password)
	if err != nil {
		infra.Logger.WithError(err).Warn("Signup failed")
		if errors.Is(err, services.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		UserID: user.ID,
		Email:  user.Email,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokenPair, user, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidCredentials})
			return
		}
		infra.Logger.WithError(err).Error("Login failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		UserID:       user.ID,
		Email:        user.Email,
	})
}

// RefreshToken propagates the validator's specific reason so clients can
// tell "log in again" from a retryable failure.
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var input dto.RefreshTokenInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokenPair, err := c.service.RefreshTokens(input.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired),
			errors.Is(err, services.ErrTokenRevoked),
			errors.Is(err, services.ErrTokenInvalid):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			infra.Logger.WithError(err).Error("Token refresh failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenPairResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	})
}

func (c *AuthController) VerifyToken(ctx *gin.Context) {
	var input dto.TokenInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.service.VerifyAccessToken(input.Token); err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired),
			errors.Is(err, services.ErrTokenRevoked),
			errors.Is(err, services.ErrTokenInvalid):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrTokenRejected})
		default:
			infra.Logger.WithError(err).Error("Token verification failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Token is valid"})
}

func (c *AuthController) BlacklistToken(ctx *gin.Context) {
	var input dto.TokenInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.service.BlacklistToken(input.Token); err != nil {
		if errors.Is(err, services.ErrTokenInvalid) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrTokenRejected})
			return
		}
		infra.Logger.WithError(err).Error("Token blacklisting failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Token has been blacklisted"})
}

// Logout revokes the presented access token and, when supplied in the body,
// the refresh token as well. Expired tokens are accepted; logout is cleanup,
// not a security check.
func (c *AuthController) Logout(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrMissingCredential.Error()})
		return
	}
	if !strings.HasPrefix(header, "Bearer ") {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}
	accessToken := strings.TrimPrefix(header, "Bearer ")

	var input dto.LogoutInput
	_ = ctx.ShouldBindJSON(&input)

	if err := c.service.Logout(accessToken, input.RefreshToken); err != nil {
		if errors.Is(err, services.ErrTokenInvalid) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrTokenRejected})
			return
		}
		infra.Logger.WithError(err).Error("Logout failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (c *AuthController) Protected(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "You have access to this protected endpoint!"})
}
