package models

import "gorm.io/gorm"

type Tool struct {
	gorm.Model
	Title            string     `gorm:"not null;unique;size:100"`
	ShortDescription string     `gorm:"size:100"`
	FullDescription  string     `gorm:"size:500"`
	Instructions     string     `gorm:"size:5000"`
	Slug             string     `gorm:"unique;index"`
	UserID           uint       `gorm:"not null;index"`
	User             User       `json:"-"`
	TopicID          *uint      `gorm:"index"`
	Categories       []Category `gorm:"many2many:tool_categories;"`
	Votes            []Vote     `gorm:"constraint:OnDelete:CASCADE;"`
	Comments         []Comment  `gorm:"constraint:OnDelete:CASCADE;"`
}
