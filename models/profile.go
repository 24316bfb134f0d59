package models

import "gorm.io/gorm"

// Profile is created together with its user at registration.
type Profile struct {
	gorm.Model
	UserID             uint   `gorm:"not null;uniqueIndex"`
	FirstName          string `gorm:"size:100"`
	LastName           string `gorm:"size:100"`
	ProfileDescription string `gorm:"size:500"`
	Linkedin           string `gorm:"size:200"`
	Image              string `gorm:"size:500;default:'user-images/anonymous.png'"`
}
