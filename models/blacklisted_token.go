package models

import "gorm.io/gorm"

// BlacklistedToken records the jti of a revoked token. Only the identifier is
// stored, never the raw token. Entries whose token has passed its natural
// expiry can be garbage collected.
type BlacklistedToken struct {
	gorm.Model
	TokenID   string `gorm:"not null;unique;index"`
	ExpiresAt int64  `gorm:"not null;index"`
}
