package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DennisSchenkel/sessionminds-backend/constants"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/DennisSchenkel/sessionminds-backend/services"
	"github.com/gin-gonic/gin"
)

func bearerToken(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// AuthMiddleware rejects the request before any handler logic runs unless a
// live access token is presented. The authenticated user is bound to the
// request context for downstream ownership checks.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := bearerToken(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": services.ErrMissingCredential.Error()})
			return
		}

		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTokenExpired):
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": services.ErrTokenExpired.Error()})
			case errors.Is(err, services.ErrTokenRevoked), errors.Is(err, services.ErrTokenInvalid):
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrTokenRejected})
			case errors.Is(err, repositories.ErrUserNotFound):
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrTokenRejected})
			default:
				// Blacklist store outage: fail closed, never admit.
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
			}
			return
		}

		ctx.Set("user", user)

		ctx.Next()
	}
}

// OptionalAuthMiddleware binds the user when a valid token is presented and
// lets the request pass anonymously otherwise. List endpoints use it so
// serializers can mark ownership without requiring login.
func OptionalAuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if tokenString, ok := bearerToken(ctx); ok {
			if user, err := authService.GetUserFromToken(tokenString); err == nil {
				ctx.Set("user", user)
			}
		}
		ctx.Next()
	}
}
