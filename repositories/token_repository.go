package repositories

import (
	"time"

	"github.com/DennisSchenkel/sessionminds-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ITokenRepository interface {
	AddBlacklistedToken(tokenID string, expiresAt int64) error
	IsTokenBlacklisted(tokenID string) (bool, error)
	CleanExpiredTokens() error
}

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

// AddBlacklistedToken records a revoked token id. Inserting an id that is
// already blacklisted is treated as success.
func (r *TokenRepository) AddBlacklistedToken(tokenID string, expiresAt int64) error {
	blacklistedToken := models.BlacklistedToken{
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&blacklistedToken)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *TokenRepository) IsTokenBlacklisted(tokenID string) (bool, error) {
	var count int64
	result := r.db.Model(&models.BlacklistedToken{}).Where("token_id = ?", tokenID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CleanExpiredTokens drops entries whose token has passed its natural expiry.
// An expired token is rejected before the blacklist is consulted, so removing
// the entry does not re-admit it.
func (r *TokenRepository) CleanExpiredTokens() error {
	now := time.Now().Unix()
	result := r.db.Unscoped().Where("expires_at < ?", now).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
