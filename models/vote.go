package models

import "gorm.io/gorm"

// Vote is unique per user and tool.
type Vote struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:idx_votes_user_tool"`
	ToolID uint `gorm:"not null;uniqueIndex:idx_votes_user_tool;index"`
}
