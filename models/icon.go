package models

import "gorm.io/gorm"

type Icon struct {
	gorm.Model
	Title    string `gorm:"not null;unique;size:100"`
	IconCode string `gorm:"not null;unique;size:10"`
}
