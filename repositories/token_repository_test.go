package repositories

import (
	"testing"
	"time"

	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTokenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BlacklistedToken{}))
	return db
}

func TestTokenRepository_AddAndLookup(t *testing.T) {
	db := setupTokenTestDB(t)
	repository := NewTokenRepository(db)

	expiresAt := time.Now().Add(time.Hour).Unix()
	require.NoError(t, repository.AddBlacklistedToken("jti-1", expiresAt))

	blacklisted, err := repository.IsTokenBlacklisted("jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	blacklisted, err = repository.IsTokenBlacklisted("jti-2")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestTokenRepository_AddBlacklistedToken_Idempotent(t *testing.T) {
	db := setupTokenTestDB(t)
	repository := NewTokenRepository(db)

	expiresAt := time.Now().Add(time.Hour).Unix()
	require.NoError(t, repository.AddBlacklistedToken("jti-1", expiresAt))
	require.NoError(t, repository.AddBlacklistedToken("jti-1", expiresAt))

	var count int64
	require.NoError(t, db.Model(&models.BlacklistedToken{}).Where("token_id = ?", "jti-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTokenRepository_CleanExpiredTokens(t *testing.T) {
	db := setupTokenTestDB(t)
	repository := NewTokenRepository(db)

	require.NoError(t, repository.AddBlacklistedToken("expired", time.Now().Add(-time.Hour).Unix()))
	require.NoError(t, repository.AddBlacklistedToken("live", time.Now().Add(time.Hour).Unix()))

	require.NoError(t, repository.CleanExpiredTokens())

	blacklisted, err := repository.IsTokenBlacklisted("expired")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	blacklisted, err = repository.IsTokenBlacklisted("live")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}
