package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DennisSchenkel/sessionminds-backend/config"
	"github.com/DennisSchenkel/sessionminds-backend/constants"
	"github.com/DennisSchenkel/sessionminds-backend/middlewares"
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/DennisSchenkel/sessionminds-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Icon{},
		&models.Topic{},
		&models.Category{},
		&models.Tool{},
		&models.Vote{},
		&models.Comment{},
		&models.BlacklistedToken{},
	)
	require.NoError(t, err)
	return db
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		Secret:              []byte("test-secret"),
		SigningAlgorithm:    "HS256",
		AccessTokenTTL:      15 * time.Minute,
		RefreshTokenTTL:     24 * time.Hour,
		RotateRefreshTokens: true,
	}
}

func setupAuthTestRouter(t *testing.T, cfg config.AuthConfig) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	tokenService, err := services.NewTokenService(cfg, repositories.NewTokenRepository(db))
	require.NoError(t, err)
	authService := services.NewAuthService(repositories.NewAuthRepository(db), tokenService, cfg.RotateRefreshTokens)
	authController := NewAuthController(authService)

	r := gin.New()
	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.POST("/logout", authController.Logout)
	r.GET("/protected", middlewares.AuthMiddleware(authService), authController.Protected)
	tokenRouter := r.Group("/api/token")
	tokenRouter.POST("/refresh", authController.RefreshToken)
	tokenRouter.POST("/verify", authController.VerifyToken)
	tokenRouter.POST("/blacklist", authController.BlacklistToken)

	return r, db
}

func performRequest(r *gin.Engine, method string, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string, password string) map[string]any {
	t.Helper()

	w := performRequest(r, http.MethodPost, "/register", gin.H{
		"email":        email,
		"password":     password,
		"passwordConf": password,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(r, http.MethodPost, "/login", gin.H{
		"email":    email,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthController_Register(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())

	w := performRequest(r, http.MethodPost, "/register", gin.H{
		"email":        "user@example.com",
		"password":     "password1234",
		"passwordConf": "password1234",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user@example.com", body["email"])
	assert.NotZero(t, body["user_id"])
}

func TestAuthController_Register_Validation(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())

	tests := []struct {
		name  string
		input gin.H
	}{
		{name: "password mismatch", input: gin.H{"email": "user@example.com", "password": "password1234", "passwordConf": "different1234"}},
		{name: "short password", input: gin.H{"email": "user@example.com", "password": "short", "passwordConf": "short"}},
		{name: "invalid email", input: gin.H{"email": "not-an-email", "password": "password1234", "passwordConf": "password1234"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, "/register", tt.input, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())

	input := gin.H{"email": "user@example.com", "password": "password1234", "passwordConf": "password1234"}
	w := performRequest(r, http.MethodPost, "/register", input, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(r, http.MethodPost, "/register", input, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthController_Login(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())

	body := registerAndLogin(t, r, "user@example.com", "password1234")
	assert.NotEmpty(t, body["accessToken"])
	assert.NotEmpty(t, body["refreshToken"])
	assert.Equal(t, "user@example.com", body["email"])
	assert.NotZero(t, body["user_id"])
}

func TestAuthController_Login_WrongPassword(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())
	registerAndLogin(t, r, "user@example.com", "password1234")

	w := performRequest(r, http.MethodPost, "/login", gin.H{
		"email":    "user@example.com",
		"password": "wrong-password",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, constants.ErrInvalidCredentials, body["error"])
}

func TestAuthController_Protected(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())
	tokens := registerAndLogin(t, r, "user@example.com", "password1234")
	accessToken := tokens["accessToken"].(string)

	w := performRequest(r, http.MethodGet, "/protected", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(r, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer not-a-jwt",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_Protected_ExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testAuthConfig()
	db := setupTestDB(t)

	tokenService, err := services.NewTokenService(cfg, repositories.NewTokenRepository(db))
	require.NoError(t, err)
	authService := services.NewAuthService(repositories.NewAuthRepository(db), tokenService, cfg.RotateRefreshTokens)
	authController := NewAuthController(authService)

	r := gin.New()
	r.GET("/protected", middlewares.AuthMiddleware(authService), authController.Protected)

	user := models.User{Email: "user@example.com", Password: "hashed", Profile: models.Profile{}}
	require.NoError(t, db.Create(&user).Error)

	expired, err := tokenService.IssueToken(user.ID, user.Email, services.TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	w := performRequest(r, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer " + expired,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, services.ErrTokenExpired.Error(), body["error"])
}

// A live token whose user has since been deleted no longer grants access.
func TestAuthController_Protected_DeletedUser(t *testing.T) {
	r, db := setupAuthTestRouter(t, testAuthConfig())
	tokens := registerAndLogin(t, r, "user@example.com", "password1234")
	accessToken := tokens["accessToken"].(string)

	require.NoError(t, db.Unscoped().Where("email = ?", "user@example.com").Delete(&models.User{}).Error)

	w := performRequest(r, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, constants.ErrTokenRejected, body["error"])
}

func TestAuthController_RefreshToken_RotationRejectsReplay(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())
	tokens := registerAndLogin(t, r, "user@example.com", "password1234")
	refreshToken := tokens["refreshToken"].(string)

	w := performRequest(r, http.MethodPost, "/api/token/refresh", gin.H{"refreshToken": refreshToken}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["accessToken"])
	assert.NotEmpty(t, body["refreshToken"])
	assert.NotEqual(t, refreshToken, body["refreshToken"])

	w = performRequest(r, http.MethodPost, "/api/token/refresh", gin.H{"refreshToken": refreshToken}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_RefreshToken_RejectsAccessToken(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())
	tokens := registerAndLogin(t, r, "user@example.com", "password1234")

	w := performRequest(r, http.MethodPost, "/api/token/refresh", gin.H{
		"refreshToken": tokens["accessToken"].(string),
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_VerifyToken(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())
	tokens := registerAndLogin(t, r, "user@example.com", "password1234")

	w := performRequest(r, http.MethodPost, "/api/token/verify", gin.H{
		"token": tokens["accessToken"].(string),
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodPost, "/api/token/verify", gin.H{"token": "not-a-jwt"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, constants.ErrTokenRejected, body["error"])
}

func TestAuthController_BlacklistToken(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())
	tokens := registerAndLogin(t, r, "user@example.com", "password1234")
	accessToken := tokens["accessToken"].(string)

	w := performRequest(r, http.MethodPost, "/api/token/blacklist", gin.H{"token": accessToken}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(r, http.MethodPost, "/api/token/blacklist", gin.H{"token": "not-a-jwt"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthController_Logout(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())
	tokens := registerAndLogin(t, r, "user@example.com", "password1234")
	accessToken := tokens["accessToken"].(string)
	refreshToken := tokens["refreshToken"].(string)

	w := performRequest(r, http.MethodPost, "/logout", gin.H{"refreshToken": refreshToken}, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(r, http.MethodPost, "/api/token/refresh", gin.H{"refreshToken": refreshToken}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_Logout_RequiresHeader(t *testing.T) {
	r, _ := setupAuthTestRouter(t, testAuthConfig())

	w := performRequest(r, http.MethodPost, "/logout", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
