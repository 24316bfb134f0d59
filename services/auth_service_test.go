package services

import (
	"testing"
	"time"

	"github.com/DennisSchenkel/sessionminds-backend/config"
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestAuthService(t *testing.T, db *gorm.DB, cfg config.AuthConfig) (IAuthService, ITokenService) {
	t.Helper()

	tokenService := newTestTokenService(t, db, cfg)
	authService := NewAuthService(repositories.NewAuthRepository(db), tokenService, cfg.RotateRefreshTokens)
	return authService, tokenService
}

func TestAuthService_Signup(t *testing.T) {
	db := setupTestDB(t)
	authService, _ := newTestAuthService(t, db, testAuthConfig())

	user, err := authService.Signup("User@Example.com", "password1234")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	assert.Equal(t, "user@example.com", user.Email)
	assert.NotEqual(t, "password1234", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password1234")))

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	authService, _ := newTestAuthService(t, db, testAuthConfig())

	_, err := authService.Signup("user@example.com", "password1234")
	require.NoError(t, err)

	_, err = authService.Signup("user@example.com", "password1234")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	db := setupTestDB(t)
	authService, tokenService := newTestAuthService(t, db, testAuthConfig())

	created, err := authService.Signup("user@example.com", "password1234")
	require.NoError(t, err)

	pair, user, err := authService.Login("user@example.com", "password1234")
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, created.ID, user.ID)

	accessClaims, err := tokenService.Validate(pair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)
	refreshClaims, err := tokenService.Validate(pair.RefreshToken, TokenTypeRefresh)
	require.NoError(t, err)

	userID, err := accessClaims.UserID()
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "user@example.com", refreshClaims.Email)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	authService, _ := newTestAuthService(t, db, testAuthConfig())

	_, err := authService.Signup("user@example.com", "password1234")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "user@example.com", password: "wrong-password"},
		{name: "unknown email", email: "nobody@example.com", password: "password1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, user, err := authService.Login(tt.email, tt.password)
			assert.Nil(t, pair)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_RefreshTokens_RotatesConsumedToken(t *testing.T) {
	db := setupTestDB(t)
	authService, tokenService := newTestAuthService(t, db, testAuthConfig())

	_, err := authService.Signup("user@example.com", "password1234")
	require.NoError(t, err)
	pair, _, err := authService.Login("user@example.com", "password1234")
	require.NoError(t, err)

	newPair, err := authService.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, newPair)
	assert.NotEqual(t, pair.RefreshToken, newPair.RefreshToken)

	_, err = tokenService.Validate(newPair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)

	// Replaying the consumed refresh token must fail.
	_, err = authService.RefreshTokens(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// The rotated-in token still works.
	_, err = authService.RefreshTokens(newPair.RefreshToken)
	require.NoError(t, err)
}

func TestAuthService_RefreshTokens_RotationDisabled(t *testing.T) {
	db := setupTestDB(t)
	cfg := testAuthConfig()
	cfg.RotateRefreshTokens = false
	authService, _ := newTestAuthService(t, db, cfg)

	_, err := authService.Signup("user@example.com", "password1234")
	require.NoError(t, err)
	pair, _, err := authService.Login("user@example.com", "password1234")
	require.NoError(t, err)

	_, err = authService.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)
	_, err = authService.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)
}

func TestAuthService_RefreshTokens_RejectsAccessToken(t *testing.T) {
	db := setupTestDB(t)
	authService, _ := newTestAuthService(t, db, testAuthConfig())

	_, err := authService.Signup("user@example.com", "password1234")
	require.NoError(t, err)
	pair, _, err := authService.Login("user@example.com", "password1234")
	require.NoError(t, err)

	_, err = authService.RefreshTokens(pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAuthService_Logout_RevokesBothTokens(t *testing.T) {
	db := setupTestDB(t)
	authService, _ := newTestAuthService(t, db, testAuthConfig())

	_, err := authService.Signup("user@example.com", "password1234")
	require.NoError(t, err)
	pair, _, err := authService.Login("user@example.com", "password1234")
	require.NoError(t, err)

	require.NoError(t, authService.Logout(pair.AccessToken, pair.RefreshToken))

	assert.ErrorIs(t, authService.VerifyAccessToken(pair.AccessToken), ErrTokenRevoked)
	_, err = authService.RefreshTokens(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

// Logout only needs a well-formed signature; an expired access token can still
// be logged out.
func TestAuthService_Logout_ExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	authService, tokenService := newTestAuthService(t, db, testAuthConfig())

	expired, err := tokenService.IssueToken(1, "user@example.com", TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	require.NoError(t, authService.Logout(expired, ""))
}

func TestAuthService_Logout_MalformedToken(t *testing.T) {
	db := setupTestDB(t)
	authService, _ := newTestAuthService(t, db, testAuthConfig())

	err := authService.Logout("not-a-jwt", "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAuthService_GetUserFromToken(t *testing.T) {
	db := setupTestDB(t)
	authService, _ := newTestAuthService(t, db, testAuthConfig())

	created, err := authService.Signup("user@example.com", "password1234")
	require.NoError(t, err)
	pair, _, err := authService.Login("user@example.com", "password1234")
	require.NoError(t, err)

	user, err := authService.GetUserFromToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	require.NoError(t, authService.BlacklistToken(pair.AccessToken))

	_, err = authService.GetUserFromToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthService_GetUserFromToken_DeletedUser(t *testing.T) {
	db := setupTestDB(t)
	authService, _ := newTestAuthService(t, db, testAuthConfig())

	created, err := authService.Signup("user@example.com", "password1234")
	require.NoError(t, err)
	pair, _, err := authService.Login("user@example.com", "password1234")
	require.NoError(t, err)

	require.NoError(t, db.Unscoped().Delete(&models.User{}, created.ID).Error)

	_, err = authService.GetUserFromToken(pair.AccessToken)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
