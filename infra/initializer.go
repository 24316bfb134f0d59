package infra

import (
	"github.com/joho/godotenv"
)

func Initialize() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found; using environment variables")
	}
}
