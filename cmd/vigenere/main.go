package main

import (
	"os"

	"vigenere/cmd/vigenere/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
