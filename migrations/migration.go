package main

import (
	"github.com/DennisSchenkel/sessionminds-backend/infra"
	"github.com/DennisSchenkel/sessionminds-backend/models"
)

func main() {
	infra.InitLogger()
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Icon{},
		&models.Topic{},
		&models.Category{},
		&models.Tool{},
		&models.Vote{},
		&models.Comment{},
		&models.BlacklistedToken{},
	); err != nil {
		panic("Failed to migrate database")
	}
}
