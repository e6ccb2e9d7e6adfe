package main

import (
	"os"

	"cipherstream/cmd/cipherstream/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
