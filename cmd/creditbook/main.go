package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/creditbook-dev/creditbook/internal/commands"
)

func main() {
	// Pick up DRIVE_ACCESS_TOKEN and friends from a local .env, if present.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
