package models

import "gorm.io/gorm"

type Topic struct {
	gorm.Model
	Title       string `gorm:"not null;unique;size:100"`
	Description string `gorm:"size:500"`
	IconID      *uint
	Icon        *Icon
	Slug        string `gorm:"unique;index"`
	Tools       []Tool
}
