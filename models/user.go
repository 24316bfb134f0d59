package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email    string    `gorm:"not null;unique"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"not null;default:'user'"`
	Profile  Profile   `gorm:"constraint:OnDelete:CASCADE;"`
	Tools    []Tool    `gorm:"constraint:OnDelete:CASCADE;"`
	Votes    []Vote    `gorm:"constraint:OnDelete:CASCADE;"`
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE;"`
}
