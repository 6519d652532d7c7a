package config

import (
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads the local .env file when one exists. Deployed
// environments provide variables directly.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	_ = godotenv.Load()
}
