package main

import (
	"os"

	"hangman/cmd/hangman/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
