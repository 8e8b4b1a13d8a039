package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/andino-dev/andino/internal/commands"
)

func main() {
	// Optional .env supplies ANDINO_EMAIL, ANDINO_PASSWORD, ANDINO_PROFILE.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
