package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model
	Text   string `gorm:"not null;size:2000"`
	ToolID uint   `gorm:"not null;index"`
	UserID uint   `gorm:"not null;index"`
}
