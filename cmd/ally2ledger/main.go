package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/allyledger/ally2ledger/internal/commands"
)

func main() {
	// A .env file is optional; it can carry ALLY2LEDGER_BIN for
	// development setups.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
